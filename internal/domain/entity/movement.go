package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement registro inmutable de un retiro de inventario.
// UnitPrice es el precio del producto en el momento del retiro.
type Movement struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int64 // siempre positivo: cantidad retirada
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}

// Total devuelve Quantity × UnitPrice.
func (m *Movement) Total() decimal.Decimal {
	return m.UnitPrice.Mul(decimal.NewFromInt(m.Quantity))
}
