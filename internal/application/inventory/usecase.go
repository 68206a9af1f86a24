package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// WithdrawUseCase registra retiros de stock de forma transaccional: bloqueo del producto,
// verificación de existencia, decremento y movimiento en la misma tx.
type WithdrawUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	log      zerolog.Logger
	now      func() time.Time
}

// NewWithdrawUseCase construye el caso de uso. movRepo (fuera de tx) se usa solo para consultas.
func NewWithdrawUseCase(txRunner TxRunner, movRepo repository.MovementRepository, log zerolog.Logger) *WithdrawUseCase {
	return &WithdrawUseCase{
		txRunner: txRunner,
		movRepo:  movRepo,
		log:      log,
		now:      time.Now,
	}
}

// WithdrawInput entrada de un retiro.
type WithdrawInput struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}

// Withdraw resta Quantity de la existencia del producto y agrega el Movement correspondiente.
// Errores esperados: ErrInvalidInput, ErrProductNotFound, ErrUserNotFound, *InsufficientStockError.
// Cualquier otro error es *StorageError; en todos los casos no queda escritura parcial.
func (uc *WithdrawUseCase) Withdraw(ctx context.Context, in WithdrawInput) (*entity.Movement, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	// Los IDs los asigna el store a partir de 1: uno no positivo nunca existe.
	if in.ProductID <= 0 {
		return nil, domain.ErrProductNotFound
	}
	if in.UserID <= 0 {
		return nil, domain.ErrUserNotFound
	}

	var created *entity.Movement
	err := uc.txRunner.RunForProduct(ctx, in.ProductID, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del producto hasta Commit/Rollback
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.Quantity < in.Quantity {
			return &domain.InsufficientStockError{Available: product.Quantity, Requested: in.Quantity}
		}
		if err := productRepo.DecrementQuantity(ctx, product.ID, in.Quantity); err != nil {
			return err
		}
		mov := &entity.Movement{
			UserID:    in.UserID,
			ProductID: product.ID,
			Quantity:  in.Quantity,
			UnitPrice: product.UnitPrice,
			CreatedAt: uc.now().UTC(),
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrStorage) {
			uc.log.Error().Err(err).
				Int64("user_id", in.UserID).
				Int64("product_id", in.ProductID).
				Int64("quantity", in.Quantity).
				Msg("retiro fallido por error de almacenamiento")
		}
		return nil, err
	}

	uc.log.Debug().
		Int64("movement_id", created.ID).
		Int64("product_id", created.ProductID).
		Int64("quantity", created.Quantity).
		Msg("retiro registrado")
	return created, nil
}

// ListByProduct devuelve el historial de retiros de un producto, más recientes primero.
func (uc *WithdrawUseCase) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error) {
	return uc.movRepo.ListByProduct(ctx, productID, limit, offset)
}
