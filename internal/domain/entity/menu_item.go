package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuCategory agrupa ítems del menú (entrantes, platos fuertes, bebidas, etc.).
type MenuCategory struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

// MenuItem es un ítem vendible del menú. Price es el precio de venta vigente (2 decimales);
// el procesador de ventas siempre toma este precio, nunca el que envíe el cliente.
// PreparationTime está en minutos.
type MenuItem struct {
	ID              string
	Name            string
	Description     string
	Price           decimal.Decimal
	CategoryID      string
	IsAvailable     bool
	PreparationTime int
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
