package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/restopos-api/internal/application/dto"
	appinventory "github.com/jhoicas/restopos-api/internal/application/inventory"
	"github.com/jhoicas/restopos-api/internal/domain"
	"github.com/jhoicas/restopos-api/internal/domain/entity"
	"github.com/jhoicas/restopos-api/internal/domain/repository"
)

// StockUseCase alta y consulta de insumos. Las cantidades solo se mutan vía el
// ledger (StockLedgerUseCase); aquí no hay deltas.
type StockUseCase struct {
	repo repository.StockItemRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockItemRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Create registra un insumo nuevo. Cantidades no negativas, costo unitario > 0.
func (uc *StockUseCase) Create(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Unit) == "" {
		return nil, fmt.Errorf("%w: el insumo requiere nombre y unidad", domain.ErrInvalidInput)
	}
	if in.CurrentQuantity.IsNegative() || in.MinimumQuantity.IsNegative() {
		return nil, fmt.Errorf("%w: las cantidades no pueden ser negativas", domain.ErrInvalidInput)
	}
	if !in.UnitCost.IsPositive() {
		return nil, fmt.Errorf("%w: el costo unitario debe ser positivo", domain.ErrInvalidInput)
	}
	item := &entity.StockItem{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		Unit:            in.Unit,
		CurrentQuantity: in.CurrentQuantity,
		MinimumQuantity: in.MinimumQuantity,
		UnitCost:        in.UnitCost,
		Supplier:        in.Supplier,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return appinventory.ToStockItemResponse(item), nil
}

// GetByID obtiene un insumo por id.
func (uc *StockUseCase) GetByID(id string) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return appinventory.ToStockItemResponse(item), nil
}

// List lista todos los insumos.
func (uc *StockUseCase) List() ([]*dto.StockItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, appinventory.ToStockItemResponse(it))
	}
	return out, nil
}
