package dto

import "github.com/shopspring/decimal"

// MonthlyReportRequest parámetros para GET /api/reports/monthly.
type MonthlyReportRequest struct {
	Month int `query:"month"` // 1-12
	Year  int `query:"year"`
}

// SpendRowDTO gasto agrupado por usuario, producto y precio unitario.
type SpendRowDTO struct {
	User          string          `json:"user"`
	Product       string          `json:"product"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	Movements     int64           `json:"movements"`
}

// MonthlyReportResponse reporte mensual; Rows ordenadas por TotalSpent descendente.
type MonthlyReportResponse struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Name       string          `json:"name"` // report_<mes>_<año>
	Rows       []SpendRowDTO   `json:"rows"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}
