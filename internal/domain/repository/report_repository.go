package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SpendResult fila cruda del reporte de gasto: un grupo (usuario, producto, precio unitario).
type SpendResult struct {
	UserName      string
	ProductName   string
	UnitPrice     decimal.Decimal
	TotalQuantity int64
	TotalSpent    decimal.Decimal // SUM(quantity * unit_price)
	Movements     int64
}

// ReportRepository consultas de solo lectura sobre movements ⨝ users ⨝ products.
type ReportRepository interface {
	// SpendByPeriod agrupa los movimientos con created_at en [from, to) y ordena por TotalSpent descendente.
	SpendByPeriod(ctx context.Context, from, to time.Time) ([]SpendResult, error)
}
