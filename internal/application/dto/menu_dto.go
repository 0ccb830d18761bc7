package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuCategoryRequest alta de categoría del menú.
type CreateMenuCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MenuCategoryResponse categoría del menú.
type MenuCategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateMenuItemRequest alta de ítem del menú. Price debe ser > 0.
type CreateMenuItemRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      string          `json:"category_id"`
	PreparationTime int             `json:"preparation_time"`
	ImageURL        string          `json:"image_url"`
}

// UpdateMenuItemRequest edición de ítem del menú (disponibilidad incluida).
type UpdateMenuItemRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	IsAvailable     *bool            `json:"is_available"`
	PreparationTime *int             `json:"preparation_time"`
	ImageURL        *string          `json:"image_url"`
}

// MenuItemResponse ítem del menú.
type MenuItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      string          `json:"category_id"`
	IsAvailable     bool            `json:"is_available"`
	PreparationTime int             `json:"preparation_time"`
	ImageURL        string          `json:"image_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
