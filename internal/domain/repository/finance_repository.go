package repository

import (
	"time"

	"github.com/jhoicas/restopos-api/internal/domain/entity"
)

// IncomeRepository define el puerto para ingresos no provenientes de ventas (append-only).
type IncomeRepository interface {
	Create(income *entity.Income) error
	ListByDateRange(start, end time.Time) ([]*entity.Income, error)
}

// ExpenseRepository define el puerto para gastos (append-only).
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	ListByDateRange(start, end time.Time) ([]*entity.Expense, error)
}
