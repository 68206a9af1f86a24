package sqlite

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el reporte de gasto.
type ReportRepo struct {
	db *gorm.DB
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(db *gorm.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// SpendByPeriod agrupa por usuario, producto y precio unitario los movimientos con created_at en [from, to).
// from y to se comparan como texto: ambos deben estar en UTC, igual que los created_at guardados.
//
// unit_price es TEXT, así que el gasto no se calcula en SQL (SQLite lo sumaría como REAL):
// dentro de un grupo el precio es único y TotalSpent = UnitPrice * TotalQuantity en decimal.
func (r *ReportRepo) SpendByPeriod(ctx context.Context, from, to time.Time) ([]repository.SpendResult, error) {
	const query = `
	SELECT
	    u.name           AS user_name,
	    p.name           AS product_name,
	    m.unit_price     AS unit_price,
	    SUM(m.quantity)  AS total_quantity,
	    COUNT(*)         AS movements
	FROM movements m
	JOIN users    u ON u.id = m.user_id
	JOIN products p ON p.id = m.product_id
	WHERE m.created_at >= ?
	  AND m.created_at <  ?
	GROUP BY u.id, p.id, m.unit_price`

	results := []repository.SpendResult{}
	if err := r.db.WithContext(ctx).Raw(query, from.UTC(), to.UTC()).Scan(&results).Error; err != nil {
		return nil, domain.NewStorageError("report.SpendByPeriod", err)
	}
	for i := range results {
		results[i].TotalSpent = results[i].UnitPrice.Mul(decimal.NewFromInt(results[i].TotalQuantity))
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if c := a.TotalSpent.Cmp(b.TotalSpent); c != 0 {
			return c > 0
		}
		if a.UserName != b.UserName {
			return a.UserName < b.UserName
		}
		return a.ProductName < b.ProductName
	})
	return results, nil
}
