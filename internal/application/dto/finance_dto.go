package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIncomeRequest alta de ingreso no proveniente de ventas. Amount > 0.
// Date es fecha de negocio (YYYY-MM-DD), distinta del created_at de auditoría.
type CreateIncomeRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Source      string          `json:"source"`
	Date        string          `json:"date"`
}

// IncomeResponse ingreso registrado.
type IncomeResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Source      string          `json:"source,omitempty"`
	Date        string          `json:"date"`
	RecordedBy  string          `json:"recorded_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateExpenseRequest alta de gasto. Amount > 0.
type CreateExpenseRequest struct {
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Vendor        string          `json:"vendor"`
	ReceiptNumber string          `json:"receipt_number"`
	Date          string          `json:"date"`
}

// ExpenseResponse gasto registrado.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Vendor        string          `json:"vendor,omitempty"`
	ReceiptNumber string          `json:"receipt_number,omitempty"`
	Date          string          `json:"date"`
	RecordedBy    string          `json:"recorded_by"`
	CreatedAt     time.Time       `json:"created_at"`
}
