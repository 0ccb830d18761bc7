package sales

import (
	"context"

	"github.com/jhoicas/restopos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad del checkout: lecturas de validación, insert
// de la venta, insert de líneas y decrementos de stock comitean o ruedan atrás juntos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		menuRepo repository.MenuItemRepository,
		stockRepo repository.StockItemRepository,
		salesRepo repository.SalesTransactionRepository,
	) error) error
}
