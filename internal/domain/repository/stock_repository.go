package repository

import "github.com/jhoicas/restopos-api/internal/domain/entity"

// StockItemRepository define el puerto de persistencia para insumos del inventario.
//
// FindByName / FindByNameForUpdate encapsulan la correlación por nombre
// (case-insensitive) entre MenuItem y StockItem. Devuelven nil sin error cuando no
// hay insumo con ese nombre: muchos ítems del menú no tienen seguimiento de stock
// y la venta procede igual. Si algún día se introduce una FK explícita, solo estos
// dos métodos cambian.
//
// Las variantes ForUpdate bloquean la fila (SELECT ... FOR UPDATE) y solo tienen
// sentido dentro de una transacción.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	GetByIDForUpdate(id string) (*entity.StockItem, error)
	FindByName(name string) (*entity.StockItem, error)
	FindByNameForUpdate(name string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	List() ([]*entity.StockItem, error)
}
