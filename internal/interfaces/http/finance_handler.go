package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/restopos-api/internal/application/dto"
	"github.com/jhoicas/restopos-api/internal/application/usecase"
)

// FinanceHandler maneja el libro financiero: ingresos y gastos (protegido, manager/admin).
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// CreateIncome POST /api/finance/income. recorded_by sale del token.
func (h *FinanceHandler) CreateIncome(c *fiber.Ctx) error {
	var in dto.CreateIncomeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateIncome(GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListIncome GET /api/finance/income?start_date=&end_date=.
func (h *FinanceHandler) ListIncome(c *fiber.Ctx) error {
	start, end, ok := parseReportWindow(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date requeridos (YYYY-MM-DD)"})
	}
	resp, err := h.uc.ListIncome(start, end)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// CreateExpense POST /api/finance/expenses. recorded_by sale del token.
func (h *FinanceHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateExpense(GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListExpenses GET /api/finance/expenses?start_date=&end_date=.
func (h *FinanceHandler) ListExpenses(c *fiber.Ctx) error {
	start, end, ok := parseReportWindow(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date requeridos (YYYY-MM-DD)"})
	}
	resp, err := h.uc.ListExpenses(start, end)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}
