package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/restopos-api/internal/application/dto"
	"github.com/jhoicas/restopos-api/internal/application/inventory"
	"github.com/jhoicas/restopos-api/internal/application/usecase"
)

// StockHandler maneja el inventario: altas, consultas y ajustes vía ledger (protegido).
type StockHandler struct {
	uc     *usecase.StockUseCase
	ledger *inventory.StockLedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase, ledger *inventory.StockLedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc, ledger: ledger}
}

// Create POST /api/stock.
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/stock.
func (h *StockHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List()
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/stock/:id.
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// Adjust PATCH /api/stock/:id/quantity. Aplica un delta con signo vía el ledger:
// deltas positivos reponen (mueven last_restocked_at), negativos consumen.
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	resp, err := h.ledger.ApplyDelta(c.Context(), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}
