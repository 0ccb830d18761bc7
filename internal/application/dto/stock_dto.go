package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest alta de insumo. Cantidades no negativas, costo unitario > 0.
type CreateStockItemRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Unit            string          `json:"unit"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	Supplier        string          `json:"supplier"`
}

// UpdateStockRequest ajuste de inventario vía ledger: delta con signo y costo opcional.
// QuantityChange > 0 es reposición (actualiza last_restocked_at), < 0 es salida.
type UpdateStockRequest struct {
	ID             string           `json:"id"`
	QuantityChange decimal.Decimal  `json:"quantity_change"`
	UnitCost       *decimal.Decimal `json:"unit_cost"`
}

// StockItemResponse insumo del inventario.
type StockItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Unit            string          `json:"unit"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	Supplier        string          `json:"supplier,omitempty"`
	LastRestockedAt *time.Time      `json:"last_restocked_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
