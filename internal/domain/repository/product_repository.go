package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate lee el producto bloqueándolo hasta el fin de la transacción en curso.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// DecrementQuantity resta quantity solo si la existencia alcanza; si no, devuelve ErrInsufficientStock.
	DecrementQuantity(ctx context.Context, id, quantity int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
