package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/report"
)

// ReportHandler expone el reporte mensual de gasto.
type ReportHandler struct {
	uc  *report.MonthlyReportUseCase
	log zerolog.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.MonthlyReportUseCase, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Monthly godoc
// @Summary      Reporte mensual de gasto
// @Description  Agrupa los retiros del mes por usuario, producto y precio unitario, ordenados por gasto descendente.
// @Tags         reports
// @Produce      json
// @Param        month  query  int  true  "Mes (1-12)"
// @Param        year   query  int  true  "Año"
// @Success      200    {object}  dto.MonthlyReportResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	var in dto.MonthlyReportRequest
	if err := c.QueryParser(&in); err != nil {
		return badRequest(c, "VALIDATION", "month y year deben ser enteros")
	}
	out, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
