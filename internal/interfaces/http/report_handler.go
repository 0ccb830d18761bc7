package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/restopos-api/internal/application/dto"
	"github.com/jhoicas/restopos-api/internal/application/reports"
)

const reportDateLayout = "2006-01-02"

// ReportHandler maneja los reportes financieros (protegido, manager/admin).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales GET /api/reports/sales?start_date=&end_date= (YYYY-MM-DD, inclusivo).
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	start, end, ok := parseReportWindow(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date requeridos (YYYY-MM-DD)"})
	}
	resp, err := h.uc.GetSalesReport(c.Context(), start, end)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// Stock GET /api/reports/stock. Fotografía actual del inventario, sin ventana.
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	resp, err := h.uc.GetStockReport(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// ProfitLoss GET /api/reports/profit-loss?start_date=&end_date=.
func (h *ReportHandler) ProfitLoss(c *fiber.Ctx) error {
	start, end, ok := parseReportWindow(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date requeridos (YYYY-MM-DD)"})
	}
	resp, err := h.uc.GetProfitLossReport(c.Context(), start, end)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// parseReportWindow lee start_date y end_date. end_date es inclusivo: se extiende
// al último instante del día para que las ventas de esa fecha entren en la ventana.
func parseReportWindow(c *fiber.Ctx) (time.Time, time.Time, bool) {
	start, err := time.Parse(reportDateLayout, c.Query("start_date"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(reportDateLayout, c.Query("end_date"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
