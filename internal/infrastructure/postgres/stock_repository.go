package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/restopos-api/internal/domain/entity"
	"github.com/jhoicas/restopos-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de insumos. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, name, description, unit, current_quantity, minimum_quantity, unit_cost, supplier, last_restocked_at, created_at`

// Create persiste un insumo nuevo.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, nullIfEmpty(item.Description), item.Unit,
		item.CurrentQuantity, item.MinimumQuantity, item.UnitCost,
		nullIfEmpty(item.Supplier), item.LastRestockedAt, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1`
	return r.getOne(query, id)
}

// GetByIDForUpdate obtiene un insumo por ID bloqueando la fila (SELECT FOR UPDATE).
func (r *StockItemRepo) GetByIDForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

// FindByName busca un insumo por nombre, case-insensitive. nil sin error si no existe:
// es la correlación oportunista MenuItem ↔ StockItem (convención por nombre, sin FK).
func (r *StockItemRepo) FindByName(name string) (*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items WHERE LOWER(name) = LOWER($1)
		LIMIT 1`
	return r.getOne(query, name)
}

// FindByNameForUpdate como FindByName, pero bloqueando la fila para la transacción
// de venta en curso: dos checkouts compitiendo por el mismo insumo se serializan aquí.
func (r *StockItemRepo) FindByNameForUpdate(name string) (*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items WHERE LOWER(name) = LOWER($1)
		LIMIT 1
		FOR UPDATE`
	return r.getOne(query, name)
}

// Update persiste los campos que muta el ledger: cantidad, costo unitario y
// timestamp de reposición. El resto de columnas no cambia después del alta.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET current_quantity = $2, unit_cost = $3, last_restocked_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.CurrentQuantity, item.UnitCost, item.LastRestockedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update stock item %s: no rows affected", item.ID)
	}
	return nil
}

// List lista todos los insumos.
func (r *StockItemRepo) List() ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockItem
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *StockItemRepo) getOne(query string, arg any) (*entity.StockItem, error) {
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return item, nil
}

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var s entity.StockItem
	var description, supplier *string
	err := row.Scan(
		&s.ID, &s.Name, &description, &s.Unit, &s.CurrentQuantity, &s.MinimumQuantity,
		&s.UnitCost, &supplier, &s.LastRestockedAt, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Description = orEmpty(description)
	s.Supplier = orEmpty(supplier)
	return &s, nil
}
