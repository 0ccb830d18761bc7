package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineInput una línea de la orden: ítem del menú y cantidad (entero positivo).
type SaleLineInput struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// CreateSaleRequest entrada del checkout. El precio unitario NO viene del cliente:
// siempre se toma el snapshot vivo del catálogo.
type CreateSaleRequest struct {
	CustomerName   string          `json:"customer_name"`
	PaymentMethod  string          `json:"payment_method"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Items          []SaleLineInput `json:"items"`
}

// SaleItemResponse línea persistida de la venta.
type SaleItemResponse struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"menu_item_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// SaleResponse venta persistida con sus líneas.
type SaleResponse struct {
	ID                string             `json:"id"`
	TransactionNumber string             `json:"transaction_number"`
	CustomerName      string             `json:"customer_name,omitempty"`
	TotalAmount       decimal.Decimal    `json:"total_amount"`
	TaxAmount         decimal.Decimal    `json:"tax_amount"`
	DiscountAmount    decimal.Decimal    `json:"discount_amount"`
	FinalAmount       decimal.Decimal    `json:"final_amount"`
	PaymentMethod     string             `json:"payment_method"`
	Status            string             `json:"status"`
	CashierID         string             `json:"cashier_id"`
	CreatedAt         time.Time          `json:"created_at"`
	CompletedAt       *time.Time         `json:"completed_at,omitempty"`
	Items             []SaleItemResponse `json:"items"`
}
