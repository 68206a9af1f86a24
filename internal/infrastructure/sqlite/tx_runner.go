package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite con el producto bloqueado en memoria.
// SQLite no soporta SELECT ... FOR UPDATE; el mutex por product_id cubre desde la lectura hasta el Commit.
type TxRunner struct {
	db    *gorm.DB
	locks *keyedMutex
}

// NewTxRunner construye el runner. Usar uno por base: los locks solo valen dentro del mismo runner.
func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db, locks: newKeyedMutex()}
}

// RunForProduct bloquea productID, inicia la transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) RunForProduct(ctx context.Context, productID int64, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	unlock := r.locks.Lock(productID)
	defer unlock()

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domain.NewStorageError("begin transaction", tx.Error)
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if err := fn(NewProductRepository(tx), NewMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return domain.NewStorageError("commit transaction", err)
	}
	committed = true
	return nil
}
