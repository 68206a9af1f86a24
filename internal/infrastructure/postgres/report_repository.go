package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el reporte de gasto.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SpendByPeriod agrupa por usuario, producto y precio unitario los movimientos con created_at en [from, to).
func (r *ReportRepo) SpendByPeriod(ctx context.Context, from, to time.Time) ([]repository.SpendResult, error) {
	const query = `
	SELECT
	    u.name                          AS user_name,
	    p.name                          AS product_name,
	    m.unit_price,
	    SUM(m.quantity)::BIGINT         AS total_quantity,
	    SUM(m.quantity * m.unit_price)  AS total_spent,
	    COUNT(*)                        AS movements
	FROM movements m
	JOIN users    u ON u.id = m.user_id
	JOIN products p ON p.id = m.product_id
	WHERE m.created_at >= $1
	  AND m.created_at <  $2
	GROUP BY u.id, u.name, p.id, p.name, m.unit_price
	ORDER BY total_spent DESC, u.name, p.name`

	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, domain.NewStorageError("report.SpendByPeriod", err)
	}
	defer rows.Close()

	results := []repository.SpendResult{}
	for rows.Next() {
		var row repository.SpendResult
		if err := rows.Scan(
			&row.UserName,
			&row.ProductName,
			&row.UnitPrice,
			&row.TotalQuantity,
			&row.TotalSpent,
			&row.Movements,
		); err != nil {
			return nil, domain.NewStorageError("report.SpendByPeriod scan", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("report.SpendByPeriod", err)
	}
	return results, nil
}
