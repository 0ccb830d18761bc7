package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restopos-api/internal/application/dto"
	"github.com/jhoicas/restopos-api/internal/domain"
	"github.com/jhoicas/restopos-api/internal/domain/entity"
	"github.com/jhoicas/restopos-api/internal/domain/repository"
)

// StockLedgerUseCase es el único escritor de cantidades de inventario fuera del
// checkout: aplica deltas con signo sobre un insumo, con bloqueo de fila y guard
// contra stock negativo.
type StockLedgerUseCase struct {
	txRunner  TxRunner
	stockRepo repository.StockItemRepository
}

// NewStockLedgerUseCase construye el ledger.
func NewStockLedgerUseCase(txRunner TxRunner, stockRepo repository.StockItemRepository) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner, stockRepo: stockRepo}
}

// ApplyDelta suma QuantityChange (con signo) a la cantidad actual del insumo.
// Reglas:
//   - resultado < 0 → NegativeStockError, sin escribir nada;
//   - delta > 0 → last_restocked_at = now(); con delta cero o negativo el timestamp
//     queda intacto (invariante de diseño: solo reposiciones reales lo mueven);
//   - UnitCost, si viene, sobreescribe el costo unitario (debe ser > 0).
func (uc *StockLedgerUseCase) ApplyDelta(ctx context.Context, in dto.UpdateStockRequest) (*dto.StockItemResponse, error) {
	if in.ID == "" {
		return nil, fmt.Errorf("%w: falta el id del insumo", domain.ErrInvalidInput)
	}
	if in.UnitCost != nil && !in.UnitCost.IsPositive() {
		return nil, fmt.Errorf("%w: el costo unitario debe ser positivo", domain.ErrInvalidInput)
	}

	var updated *entity.StockItem
	err := uc.txRunner.RunStock(ctx, func(stockRepo repository.StockItemRepository) error {
		item, err := stockRepo.GetByIDForUpdate(in.ID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		newQty := item.CurrentQuantity.Add(in.QuantityChange)
		if newQty.IsNegative() {
			return &domain.NegativeStockError{Name: item.Name, Current: item.CurrentQuantity, Delta: in.QuantityChange}
		}
		item.CurrentQuantity = newQty
		if in.UnitCost != nil {
			item.UnitCost = *in.UnitCost
		}
		if in.QuantityChange.IsPositive() {
			now := time.Now()
			item.LastRestockedAt = &now
		}
		if err := stockRepo.Update(item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToStockItemResponse(updated), nil
}

// FindForMenuItem resuelve la correlación ítem de menú → insumo por nombre
// (case-insensitive). Devuelve nil si el ítem no tiene insumo correlacionado.
func (uc *StockLedgerUseCase) FindForMenuItem(name string) (*dto.StockItemResponse, error) {
	item, err := uc.stockRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return ToStockItemResponse(item), nil
}

// ToStockItemResponse convierte la entidad al DTO de respuesta.
func ToStockItemResponse(item *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Unit:            item.Unit,
		CurrentQuantity: item.CurrentQuantity,
		MinimumQuantity: item.MinimumQuantity,
		UnitCost:        item.UnitCost,
		Supplier:        item.Supplier,
		LastRestockedAt: item.LastRestockedAt,
		CreatedAt:       item.CreatedAt,
	}
}
