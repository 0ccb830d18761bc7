package repository

import "github.com/jhoicas/restopos-api/internal/domain/entity"

// MenuCategoryRepository define el puerto de persistencia para categorías del menú.
type MenuCategoryRepository interface {
	Create(category *entity.MenuCategory) error
	GetByID(id string) (*entity.MenuCategory, error)
	List(onlyActive bool) ([]*entity.MenuCategory, error)
}

// MenuItemRepository define el puerto de persistencia para ítems del menú.
// GetByIDs es el lookup de catálogo del procesador de ventas: devuelve un mapa
// id → ítem; los ids sin fila simplemente no aparecen en el mapa (el caller decide).
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	GetByIDs(ids []string) (map[string]*entity.MenuItem, error)
	List(availableOnly bool) ([]*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
}
