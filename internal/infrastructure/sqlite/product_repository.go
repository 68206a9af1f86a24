package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre SQLite (usable con el handle o con una tx).
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador. Pasar el handle o una tx de gorm.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste el producto y asigna product.ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	m := productModel{
		Name:      product.Name,
		Quantity:  product.Quantity,
		UnitPrice: product.UnitPrice,
		CreatedAt: product.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.NewStorageError("insert product", err)
	}
	product.ID = m.ID
	product.CreatedAt = m.CreatedAt
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var m productModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get product", err)
	}
	return m.toEntity(), nil
}

// GetForUpdate equivale a GetByID: el bloqueo lo mantiene TxRunner durante toda la tx.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// DecrementQuantity resta quantity solo si la existencia alcanza.
func (r *ProductRepo) DecrementQuantity(ctx context.Context, id, quantity int64) error {
	res := r.db.WithContext(ctx).
		Model(&productModel{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return domain.NewStorageError("decrement product quantity", res.Error)
	}
	if res.RowsAffected == 0 {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrProductNotFound
		}
		return &domain.InsufficientStockError{Available: current.Quantity, Requested: quantity}
	}
	return nil
}

// List lista productos por ID ascendente con paginación.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var rows []productModel
	if err := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, domain.NewStorageError("list products", err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toEntity())
	}
	return list, nil
}
