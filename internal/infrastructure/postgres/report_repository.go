package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/restopos-api/internal/domain/entity"
	"github.com/jhoicas/restopos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación del motor de reportes. Corre sobre el pool
// directamente: los reportes son de solo lectura y no participan en transacciones.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesTotals suma final_amount y cuenta transacciones completadas en la ventana.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, start, end time.Time) (decimal.Decimal, int64, error) {
	query := `
		SELECT COALESCE(SUM(final_amount), 0), COUNT(*)
		FROM sales_transactions
		WHERE status = $1 AND completed_at BETWEEN $2 AND $3`
	var total decimal.Decimal
	var count int64
	err := r.pool.QueryRow(ctx, query, entity.TransactionStatusCompleted, start, end).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales totals: %w", err)
	}
	return total, count, nil
}

// GetTopSellingItems ranking de ítems por cantidad vendida en la ventana.
func (r *ReportRepo) GetTopSellingItems(ctx context.Context, start, end time.Time, limit int) ([]repository.TopSellingItemResult, error) {
	query := `
		SELECT i.menu_item_id, m.name, SUM(i.quantity), SUM(i.total_price)
		FROM sales_transaction_items i
		JOIN sales_transactions t ON t.id = i.transaction_id
		JOIN menu_items m ON m.id = i.menu_item_id
		WHERE t.status = $1 AND t.completed_at BETWEEN $2 AND $3
		GROUP BY i.menu_item_id, m.name
		ORDER BY SUM(i.quantity) DESC
		LIMIT $4`
	rows, err := r.pool.Query(ctx, query, entity.TransactionStatusCompleted, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top selling items: %w", err)
	}
	defer rows.Close()

	var out []repository.TopSellingItemResult
	for rows.Next() {
		var res repository.TopSellingItemResult
		if err := rows.Scan(&res.MenuItemID, &res.ItemName, &res.QuantitySold, &res.Revenue); err != nil {
			return nil, fmt.Errorf("scan top selling item: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// CountStockItems cuenta los insumos del inventario.
func (r *ReportRepo) CountStockItems(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM stock_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count stock items: %w", err)
	}
	return count, nil
}

// GetLowStockItems insumos con current_quantity estrictamente bajo el mínimo.
func (r *ReportRepo) GetLowStockItems(ctx context.Context) ([]repository.LowStockItemResult, error) {
	query := `
		SELECT name, current_quantity, minimum_quantity
		FROM stock_items
		WHERE current_quantity < minimum_quantity
		ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	defer rows.Close()

	var out []repository.LowStockItemResult
	for rows.Next() {
		var res repository.LowStockItemResult
		if err := rows.Scan(&res.Name, &res.CurrentQuantity, &res.MinimumQuantity); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// GetStockValue valor total del inventario a costo actual.
func (r *ReportRepo) GetStockValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	query := `SELECT COALESCE(SUM(current_quantity * unit_cost), 0) FROM stock_items`
	if err := r.pool.QueryRow(ctx, query).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("stock value: %w", err)
	}
	return value, nil
}

// GetOtherIncome suma ingresos no provenientes de ventas con fecha en la ventana.
func (r *ReportRepo) GetOtherIncome(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM income WHERE date BETWEEN $1 AND $2`
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("other income: %w", err)
	}
	return total, nil
}

// GetTotalExpenses suma gastos con fecha en la ventana.
func (r *ReportRepo) GetTotalExpenses(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date BETWEEN $1 AND $2`
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total expenses: %w", err)
	}
	return total, nil
}
