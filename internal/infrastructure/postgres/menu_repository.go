package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/restopos-api/internal/domain/entity"
	"github.com/jhoicas/restopos-api/internal/domain/repository"
)

var _ repository.MenuCategoryRepository = (*MenuCategoryRepo)(nil)
var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuCategoryRepo implementación de MenuCategoryRepository sobre PostgreSQL (usable con pool o tx).
type MenuCategoryRepo struct {
	q Querier
}

// NewMenuCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuCategoryRepository(q Querier) *MenuCategoryRepo {
	return &MenuCategoryRepo{q: q}
}

// Create persiste una categoría del menú.
func (r *MenuCategoryRepo) Create(category *entity.MenuCategory) error {
	query := `
		INSERT INTO menu_categories (id, name, description, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, nullIfEmpty(category.Description), category.IsActive, category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert menu category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *MenuCategoryRepo) GetByID(id string) (*entity.MenuCategory, error) {
	query := `
		SELECT id, name, description, is_active, created_at
		FROM menu_categories WHERE id = $1`
	var c entity.MenuCategory
	var description *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &description, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu category: %w", err)
	}
	c.Description = orEmpty(description)
	return &c, nil
}

// List lista categorías, opcionalmente solo las activas.
func (r *MenuCategoryRepo) List(onlyActive bool) ([]*entity.MenuCategory, error) {
	query := `
		SELECT id, name, description, is_active, created_at
		FROM menu_categories`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list menu categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.MenuCategory
	for rows.Next() {
		var c entity.MenuCategory
		var description *string
		if err := rows.Scan(&c.ID, &c.Name, &description, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan menu category: %w", err)
		}
		c.Description = orEmpty(description)
		out = append(out, &c)
	}
	return out, rows.Err()
}

// MenuItemRepo implementación de MenuItemRepository sobre PostgreSQL (usable con pool o tx).
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

const menuItemColumns = `id, name, description, price, category_id, is_available, preparation_time, image_url, created_at, updated_at`

// Create persiste un ítem del menú.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (` + menuItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, nullIfEmpty(item.Description), item.Price, item.CategoryID,
		item.IsAvailable, item.PreparationTime, nullIfEmpty(item.ImageURL), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`
	item, err := scanMenuItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

// GetByIDs resuelve un conjunto de ids en una sola consulta. Los ids sin fila no
// aparecen en el mapa: el procesador de ventas decide qué hacer con los ausentes.
func (r *MenuItemRepo) GetByIDs(ids []string) (map[string]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get menu items by ids: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*entity.MenuItem, len(ids))
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out[item.ID] = item
	}
	return out, rows.Err()
}

// List lista ítems del menú, opcionalmente solo los disponibles.
func (r *MenuItemRepo) List(availableOnly bool) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items`
	if availableOnly {
		query += ` WHERE is_available`
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var out []*entity.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Update actualiza un ítem del menú.
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, is_available = $5,
		    preparation_time = $6, image_url = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, nullIfEmpty(item.Description), item.Price, item.IsAvailable,
		item.PreparationTime, nullIfEmpty(item.ImageURL), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update menu item %s: no rows affected", item.ID)
	}
	return nil
}

func scanMenuItem(row pgx.Row) (*entity.MenuItem, error) {
	var m entity.MenuItem
	var description, imageURL *string
	err := row.Scan(
		&m.ID, &m.Name, &description, &m.Price, &m.CategoryID,
		&m.IsAvailable, &m.PreparationTime, &imageURL, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Description = orEmpty(description)
	m.ImageURL = orEmpty(imageURL)
	return &m, nil
}
