package sqlite

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// productModel fila de la tabla products.
type productModel struct {
	ID        int64 `gorm:"primaryKey"`
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}

func (productModel) TableName() string { return "products" }

func (m *productModel) toEntity() *entity.Product {
	return &entity.Product{
		ID:        m.ID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		CreatedAt: m.CreatedAt,
	}
}

// userModel fila de la tabla users.
type userModel struct {
	ID    int64 `gorm:"primaryKey"`
	Name  string
	Email string
}

func (userModel) TableName() string { return "users" }

func (m *userModel) toEntity() *entity.User {
	return &entity.User{ID: m.ID, Name: m.Name, Email: m.Email}
}

// movementModel fila de la tabla movements.
type movementModel struct {
	ID        int64 `gorm:"primaryKey"`
	UserID    int64
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}

func (movementModel) TableName() string { return "movements" }

func (m *movementModel) toEntity() *entity.Movement {
	return &entity.Movement{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		CreatedAt: m.CreatedAt,
	}
}
