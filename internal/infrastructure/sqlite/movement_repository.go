package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre SQLite (solo inserción y lectura).
type MovementRepo struct {
	db *gorm.DB
}

// NewMovementRepository construye el adaptador. Pasar el handle o una tx de gorm.
func NewMovementRepository(db *gorm.DB) *MovementRepo {
	return &MovementRepo{db: db}
}

// Create persiste el movimiento. Con foreign_keys=on, un user_id inexistente se rechaza (ErrUserNotFound).
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	m := movementModel{
		UserID:    movement.UserID,
		ProductID: movement.ProductID,
		Quantity:  movement.Quantity,
		UnitPrice: movement.UnitPrice,
		CreatedAt: movement.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return domain.NewStorageError("insert movement", err)
	}
	movement.ID = m.ID
	movement.CreatedAt = m.CreatedAt
	return nil
}

// ListByProduct lista los movimientos de un producto, más recientes primero.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error) {
	var rows []movementModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, domain.NewStorageError("list movements by product", err)
	}
	list := make([]*entity.Movement, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toEntity())
	}
	return list, nil
}
