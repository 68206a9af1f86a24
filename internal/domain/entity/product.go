package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto con su existencia y precio unitario.
// Quantity solo se reduce mediante retiros (Movement); UnitPrice se fija al crear.
type Product struct {
	ID        int64
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}
