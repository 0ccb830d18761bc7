package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/restopos-api/internal/application/dto"
	"github.com/jhoicas/restopos-api/internal/application/sales"
)

// SaleHandler maneja el checkout y la consulta de ventas (protegido).
type SaleHandler struct {
	uc *sales.ProcessSaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.ProcessSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create POST /api/sales. El cajero sale del token, nunca del cuerpo.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	cashierID := GetUserID(c)
	if cashierID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.ProcessSale(c.Context(), cashierID, in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID GET /api/sales/:id. Incluye las líneas.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetTransaction(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// List GET /api/sales?limit=&offset=. Más recientes primero, sin líneas.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.ListTransactions(c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}
