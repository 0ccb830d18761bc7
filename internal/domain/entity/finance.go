package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income es un ingreso distinto de ventas (alquiler de salón, catering, etc.).
// Date es la fecha de negocio; CreatedAt es el timestamp de auditoría. Append-only.
type Income struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    string
	Source      string
	Date        time.Time
	RecordedBy  string
	CreatedAt   time.Time
}

// Expense es un gasto del negocio. Mismo esquema de fechas que Income. Append-only.
type Expense struct {
	ID            string
	Description   string
	Amount        decimal.Decimal
	Category      string
	Vendor        string
	ReceiptNumber string
	Date          time.Time
	RecordedBy    string
	CreatedAt     time.Time
}
