package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// Create devuelve domain.ErrEmailAlreadyExists si el email ya existe (constraint UNIQUE del store).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
