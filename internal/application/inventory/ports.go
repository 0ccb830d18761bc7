package inventory

import (
	"context"

	"github.com/jhoicas/restopos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con el repositorio
// de stock atado a esa tx. Garantiza que el ajuste de inventario (lectura con lock,
// guard de negativo, escritura) sea atómico.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(stockRepo repository.StockItemRepository) error) error
}
