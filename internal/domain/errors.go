package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidOrder      = errors.New("orden inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrItemUnavailable   = errors.New("ítem del menú no disponible")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNegativeStock     = errors.New("el stock no puede quedar negativo")
)

// ItemUnavailableError indica que el ítem del menú existe pero está deshabilitado para la venta.
type ItemUnavailableError struct {
	Name string
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("el ítem %q no está disponible", e.Name)
}

func (e *ItemUnavailableError) Unwrap() error { return ErrItemUnavailable }

// InsufficientStockError lleva el detalle necesario para el mensaje al cajero:
// nombre del insumo, cantidad disponible y cantidad solicitada.
type InsufficientStockError struct {
	Name      string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %q: disponible %s, solicitado %s",
		e.Name, e.Available.String(), e.Requested.String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// NegativeStockError es una violación de invariante interna: el guard de reserva
// previo debería hacer este estado inalcanzable durante una venta.
type NegativeStockError struct {
	Name    string
	Current decimal.Decimal
	Delta   decimal.Decimal
}

func (e *NegativeStockError) Error() string {
	return fmt.Sprintf("el ajuste dejaría %q en negativo: actual %s, delta %s",
		e.Name, e.Current.String(), e.Delta.String())
}

func (e *NegativeStockError) Unwrap() error { return ErrNegativeStock }
