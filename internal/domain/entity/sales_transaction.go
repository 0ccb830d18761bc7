package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una transacción de venta.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
	TransactionStatusRefunded  = "refunded"
)

// SalesTransaction es la cabecera de una venta. Invariante:
// FinalAmount = TotalAmount + TaxAmount - DiscountAmount (tax redondeado a 2 decimales).
// Los montos son inmutables después del checkout.
type SalesTransaction struct {
	ID                string
	TransactionNumber string // único en la base
	CustomerName      string
	TotalAmount       decimal.Decimal
	TaxAmount         decimal.Decimal
	DiscountAmount    decimal.Decimal
	FinalAmount       decimal.Decimal
	PaymentMethod     string // texto libre: cash, card, transfer...
	Status            string
	CashierID         string
	CreatedAt         time.Time
	CompletedAt       *time.Time
}

// SalesTransactionItem es una línea de la venta. UnitPrice es el snapshot del precio
// del menú al momento de la venta; TotalPrice = UnitPrice × Quantity, exacto.
// Pertenece en exclusiva a su transacción y nunca se actualiza después del insert.
type SalesTransactionItem struct {
	ID            string
	TransactionID string
	MenuItemID    string
	Quantity      int
	UnitPrice     decimal.Decimal
	TotalPrice    decimal.Decimal
}
