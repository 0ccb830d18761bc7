package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/restopos-api/internal/application/dto"
	"github.com/jhoicas/restopos-api/internal/domain"
	"github.com/jhoicas/restopos-api/internal/domain/entity"
	"github.com/jhoicas/restopos-api/internal/domain/repository"
)

// MenuUseCase gestión del catálogo (categorías e ítems). Solo lectura para el
// procesador de ventas: aquí no hay lógica de checkout.
type MenuUseCase struct {
	itemRepo     repository.MenuItemRepository
	categoryRepo repository.MenuCategoryRepository
}

// NewMenuUseCase construye el caso de uso con los puertos de persistencia.
func NewMenuUseCase(itemRepo repository.MenuItemRepository, categoryRepo repository.MenuCategoryRepository) *MenuUseCase {
	return &MenuUseCase{itemRepo: itemRepo, categoryRepo: categoryRepo}
}

// CreateCategory crea una categoría del menú.
func (uc *MenuUseCase) CreateCategory(in dto.CreateMenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: la categoría requiere nombre", domain.ErrInvalidInput)
	}
	cat := &entity.MenuCategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := uc.categoryRepo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// ListCategories lista categorías (activas o todas).
func (uc *MenuUseCase) ListCategories(onlyActive bool) ([]*dto.MenuCategoryResponse, error) {
	cats, err := uc.categoryRepo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MenuCategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// CreateItem crea un ítem del menú. Invariantes: precio > 0, tiempo de preparación >= 0,
// la categoría debe existir.
func (uc *MenuUseCase) CreateItem(in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el ítem requiere nombre", domain.ErrInvalidInput)
	}
	if !in.Price.IsPositive() {
		return nil, fmt.Errorf("%w: el precio debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.PreparationTime < 0 {
		return nil, fmt.Errorf("%w: el tiempo de preparación no puede ser negativo", domain.ErrInvalidInput)
	}
	cat, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("categoría %s: %w", in.CategoryID, domain.ErrNotFound)
	}

	now := time.Now()
	item := &entity.MenuItem{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		CategoryID:      in.CategoryID,
		IsAvailable:     true,
		PreparationTime: in.PreparationTime,
		ImageURL:        in.ImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// GetItem obtiene un ítem por id.
func (uc *MenuUseCase) GetItem(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toMenuItemResponse(item), nil
}

// ListItems lista ítems del menú (todos o solo disponibles).
func (uc *MenuUseCase) ListItems(availableOnly bool) ([]*dto.MenuItemResponse, error) {
	items, err := uc.itemRepo.List(availableOnly)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toMenuItemResponse(it))
	}
	return out, nil
}

// UpdateItem edición parcial de un ítem (precio, disponibilidad, etc.).
func (uc *MenuUseCase) UpdateItem(id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, fmt.Errorf("%w: el precio debe ser mayor que cero", domain.ErrInvalidInput)
		}
		item.Price = *in.Price
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.PreparationTime != nil {
		if *in.PreparationTime < 0 {
			return nil, fmt.Errorf("%w: el tiempo de preparación no puede ser negativo", domain.ErrInvalidInput)
		}
		item.PreparationTime = *in.PreparationTime
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

func toCategoryResponse(c *entity.MenuCategory) *dto.MenuCategoryResponse {
	return &dto.MenuCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func toMenuItemResponse(m *entity.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price,
		CategoryID:      m.CategoryID,
		IsAvailable:     m.IsAvailable,
		PreparationTime: m.PreparationTime,
		ImageURL:        m.ImageURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
