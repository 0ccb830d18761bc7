package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/restopos-api/internal/application/dto"
	"github.com/jhoicas/restopos-api/internal/application/usecase"
)

// MenuHandler maneja el catálogo: categorías e ítems del menú (protegido).
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// CreateCategory POST /api/menu/categories.
func (h *MenuHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateMenuCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateCategory(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListCategories GET /api/menu/categories. ?active=true filtra a las activas.
func (h *MenuHandler) ListCategories(c *fiber.Ctx) error {
	resp, err := h.uc.ListCategories(c.QueryBool("active"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// CreateItem POST /api/menu/items.
func (h *MenuHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateItem(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetItem GET /api/menu/items/:id.
func (h *MenuHandler) GetItem(c *fiber.Ctx) error {
	resp, err := h.uc.GetItem(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// ListItems GET /api/menu/items. ?available=true filtra a los disponibles.
func (h *MenuHandler) ListItems(c *fiber.Ctx) error {
	resp, err := h.uc.ListItems(c.QueryBool("available"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// UpdateItem PUT /api/menu/items/:id. Edición parcial, disponibilidad incluida.
func (h *MenuHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateItem(c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}
