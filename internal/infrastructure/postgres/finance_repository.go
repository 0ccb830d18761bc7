package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restopos-api/internal/domain/entity"
	"github.com/jhoicas/restopos-api/internal/domain/repository"
)

var _ repository.IncomeRepository = (*IncomeRepo)(nil)
var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// IncomeRepo implementación de IncomeRepository sobre PostgreSQL.
type IncomeRepo struct {
	q Querier
}

// NewIncomeRepository construye el adaptador de ingresos.
func NewIncomeRepository(q Querier) *IncomeRepo {
	return &IncomeRepo{q: q}
}

// Create persiste un ingreso. El registro es append-only: no hay Update ni Delete.
func (r *IncomeRepo) Create(income *entity.Income) error {
	query := `
		INSERT INTO income (id, description, amount, category, source, date, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		income.ID, income.Description, income.Amount, income.Category,
		nullIfEmpty(income.Source), income.Date, income.RecordedBy, income.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert income: %w", err)
	}
	return nil
}

// ListByDateRange lista ingresos con fecha de negocio dentro de la ventana (inclusiva).
func (r *IncomeRepo) ListByDateRange(start, end time.Time) ([]*entity.Income, error) {
	query := `
		SELECT id, description, amount, category, source, date, recorded_by, created_at
		FROM income
		WHERE date BETWEEN $1 AND $2
		ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list income: %w", err)
	}
	defer rows.Close()

	var out []*entity.Income
	for rows.Next() {
		var in entity.Income
		var source *string
		if err := rows.Scan(&in.ID, &in.Description, &in.Amount, &in.Category, &source, &in.Date, &in.RecordedBy, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		in.Source = orEmpty(source)
		out = append(out, &in)
	}
	return out, rows.Err()
}

// ExpenseRepo implementación de ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto. Append-only, igual que los ingresos.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, description, amount, category, vendor, receipt_number, date, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Description, expense.Amount, expense.Category,
		nullIfEmpty(expense.Vendor), nullIfEmpty(expense.ReceiptNumber),
		expense.Date, expense.RecordedBy, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// ListByDateRange lista gastos con fecha de negocio dentro de la ventana (inclusiva).
func (r *ExpenseRepo) ListByDateRange(start, end time.Time) ([]*entity.Expense, error) {
	query := `
		SELECT id, description, amount, category, vendor, receipt_number, date, recorded_by, created_at
		FROM expenses
		WHERE date BETWEEN $1 AND $2
		ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Expense
	for rows.Next() {
		var ex entity.Expense
		var vendor, receipt *string
		if err := rows.Scan(&ex.ID, &ex.Description, &ex.Amount, &ex.Category, &vendor, &receipt, &ex.Date, &ex.RecordedBy, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		ex.Vendor = orEmpty(vendor)
		ex.ReceiptNumber = orEmpty(receipt)
		out = append(out, &ex)
	}
	return out, rows.Err()
}
