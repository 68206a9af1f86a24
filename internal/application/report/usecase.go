// Package report contiene el caso de uso del reporte mensual de gasto por usuario y producto.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// MonthlyReportUseCase agrega los retiros de un mes calendario.
//
// Fuente de datos: ReportRepository (consultas read-only). El período es [día 1 00:00 UTC, día 1 del mes siguiente).
type MonthlyReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewMonthlyReportUseCase construye el caso de uso.
func NewMonthlyReportUseCase(reportRepo repository.ReportRepository) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{reportRepo: reportRepo}
}

// Generate devuelve las filas agrupadas por (usuario, producto, precio unitario) ordenadas por gasto
// descendente y el gasto total del mes. Un mes sin movimientos devuelve Rows vacío.
func (uc *MonthlyReportUseCase) Generate(ctx context.Context, in dto.MonthlyReportRequest) (*dto.MonthlyReportResponse, error) {
	if in.Month < 1 || in.Month > 12 || in.Year < 1 {
		return nil, domain.ErrInvalidInput
	}
	from, to := MonthRange(in.Month, in.Year)

	results, err := uc.reportRepo.SpendByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	rows := make([]dto.SpendRowDTO, 0, len(results))
	for _, r := range results {
		total = total.Add(r.TotalSpent)
		rows = append(rows, dto.SpendRowDTO{
			User:          r.UserName,
			Product:       r.ProductName,
			UnitPrice:     r.UnitPrice,
			TotalQuantity: r.TotalQuantity,
			TotalSpent:    r.TotalSpent,
			Movements:     r.Movements,
		})
	}

	return &dto.MonthlyReportResponse{
		Month:      in.Month,
		Year:       in.Year,
		Name:       fmt.Sprintf("report_%d_%d", in.Month, in.Year),
		Rows:       rows,
		TotalSpent: total,
	}, nil
}

// MonthRange devuelve el intervalo semiabierto [from, to) del mes en UTC.
func MonthRange(month, year int) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
