package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/restopos-api/internal/domain"
	"github.com/jhoicas/restopos-api/internal/domain/entity"
	"github.com/jhoicas/restopos-api/internal/domain/repository"
)

var _ repository.SalesTransactionRepository = (*SalesTransactionRepo)(nil)

// SalesTransactionRepo implementación de SalesTransactionRepository sobre PostgreSQL.
type SalesTransactionRepo struct {
	q Querier
}

// NewSalesTransactionRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSalesTransactionRepository(q Querier) *SalesTransactionRepo {
	return &SalesTransactionRepo{q: q}
}

const salesTransactionColumns = `id, transaction_number, customer_name, total_amount, tax_amount, discount_amount, final_amount, payment_method, status, cashier_id, created_at, completed_at`

// Create persiste la cabecera de la venta. Traduce la violación del constraint único
// de transaction_number a domain.ErrDuplicate para que el caso de uso reintente.
func (r *SalesTransactionRepo) Create(tx *entity.SalesTransaction) error {
	query := `
		INSERT INTO sales_transactions (` + salesTransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.TransactionNumber, nullIfEmpty(tx.CustomerName),
		tx.TotalAmount, tx.TaxAmount, tx.DiscountAmount, tx.FinalAmount,
		tx.PaymentMethod, tx.Status, tx.CashierID, tx.CreatedAt, tx.CompletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction number %s: %w", tx.TransactionNumber, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert sales transaction: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta.
func (r *SalesTransactionRepo) CreateItem(item *entity.SalesTransactionItem) error {
	query := `
		INSERT INTO sales_transaction_items (id, transaction_id, menu_item_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TransactionID, item.MenuItemID, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert sales transaction item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SalesTransactionRepo) GetByID(id string) (*entity.SalesTransaction, error) {
	query := `SELECT ` + salesTransactionColumns + ` FROM sales_transactions WHERE id = $1`
	tx, err := scanSalesTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales transaction: %w", err)
	}
	return tx, nil
}

// GetItemsByTransactionID obtiene las líneas de una venta.
func (r *SalesTransactionRepo) GetItemsByTransactionID(transactionID string) ([]*entity.SalesTransactionItem, error) {
	query := `
		SELECT id, transaction_id, menu_item_id, quantity, unit_price, total_price
		FROM sales_transaction_items WHERE transaction_id = $1`
	rows, err := r.q.Query(context.Background(), query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list sales transaction items: %w", err)
	}
	defer rows.Close()

	var out []*entity.SalesTransactionItem
	for rows.Next() {
		var it entity.SalesTransactionItem
		if err := rows.Scan(&it.ID, &it.TransactionID, &it.MenuItemID, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan sales transaction item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// List lista ventas paginadas, más recientes primero.
func (r *SalesTransactionRepo) List(limit, offset int) ([]*entity.SalesTransaction, error) {
	query := `
		SELECT ` + salesTransactionColumns + `
		FROM sales_transactions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales transactions: %w", err)
	}
	defer rows.Close()

	var out []*entity.SalesTransaction
	for rows.Next() {
		tx, err := scanSalesTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales transaction: %w", err)
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

func scanSalesTransaction(row pgx.Row) (*entity.SalesTransaction, error) {
	var t entity.SalesTransaction
	var customerName *string
	err := row.Scan(
		&t.ID, &t.TransactionNumber, &customerName,
		&t.TotalAmount, &t.TaxAmount, &t.DiscountAmount, &t.FinalAmount,
		&t.PaymentMethod, &t.Status, &t.CashierID, &t.CreatedAt, &t.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	t.CustomerName = orEmpty(customerName)
	return &t, nil
}
