package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem es un insumo del inventario. CurrentQuantity nunca queda negativa;
// solo el ledger de inventario la muta (delta con signo dentro de una transacción).
// LastRestockedAt se actualiza únicamente cuando el delta es estrictamente positivo:
// el timestamp refleja reposiciones reales, no ventas ni ajustes a la baja.
//
// La correlación con MenuItem es por nombre (case-insensitive), no por FK.
type StockItem struct {
	ID              string
	Name            string
	Description     string
	Unit            string // kg, litro, unidades, etc.
	CurrentQuantity decimal.Decimal
	MinimumQuantity decimal.Decimal
	UnitCost        decimal.Decimal
	Supplier        string
	LastRestockedAt *time.Time
	CreatedAt       time.Time
}
