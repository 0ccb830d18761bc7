package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopSellingItemResult fila cruda del ranking de ítems más vendidos.
// La produce la DB; el caso de uso la convierte en DTO.
type TopSellingItemResult struct {
	MenuItemID   string
	ItemName     string
	QuantitySold int64
	Revenue      decimal.Decimal
}

// LowStockItemResult fila cruda de insumos bajo el mínimo.
type LowStockItemResult struct {
	Name            string
	CurrentQuantity decimal.Decimal
	MinimumQuantity decimal.Decimal
}

// ReportRepository define las consultas de solo lectura del motor de reportes.
// Las implementaciones no modifican datos; corren sobre el pool con la consistencia
// normal del store (una venta que comite a mitad de consulta puede o no aparecer).
type ReportRepository interface {
	// GetSalesTotals suma final_amount y cuenta transacciones completadas con
	// completed_at dentro de la ventana. COALESCE a cero si no hay filas.
	GetSalesTotals(ctx context.Context, start, end time.Time) (total decimal.Decimal, count int64, err error)

	// GetTopSellingItems agrupa las líneas de venta (vía su transacción completada
	// en la ventana) por ítem del menú, ordenadas por cantidad vendida descendente.
	GetTopSellingItems(ctx context.Context, start, end time.Time, limit int) ([]TopSellingItemResult, error)

	// CountStockItems cuenta todos los insumos del inventario actual (sin ventana).
	CountStockItems(ctx context.Context) (int64, error)

	// GetLowStockItems devuelve los insumos con current_quantity < minimum_quantity.
	// El umbral es estrictamente menor: quedar exactamente en el mínimo no cuenta.
	GetLowStockItems(ctx context.Context) ([]LowStockItemResult, error)

	// GetStockValue devuelve SUM(current_quantity * unit_cost) sobre todo el inventario.
	GetStockValue(ctx context.Context) (decimal.Decimal, error)

	// GetOtherIncome suma los ingresos no provenientes de ventas con date en la ventana.
	GetOtherIncome(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// GetTotalExpenses suma los gastos con date en la ventana.
	GetTotalExpenses(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}
