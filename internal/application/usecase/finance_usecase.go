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

const businessDateLayout = "2006-01-02"

// FinanceUseCase registra ingresos y gastos del libro financiero (append-only).
// recordedBy llega como parámetro explícito desde la capa HTTP autenticada.
type FinanceUseCase struct {
	incomeRepo  repository.IncomeRepository
	expenseRepo repository.ExpenseRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(incomeRepo repository.IncomeRepository, expenseRepo repository.ExpenseRepository) *FinanceUseCase {
	return &FinanceUseCase{incomeRepo: incomeRepo, expenseRepo: expenseRepo}
}

// CreateIncome registra un ingreso no proveniente de ventas.
func (uc *FinanceUseCase) CreateIncome(recordedBy string, in dto.CreateIncomeRequest) (*dto.IncomeResponse, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: el ingreso requiere descripción", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser positivo", domain.ErrInvalidInput)
	}
	date, err := parseBusinessDate(in.Date)
	if err != nil {
		return nil, err
	}
	income := &entity.Income{
		ID:          uuid.New().String(),
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Source:      in.Source,
		Date:        date,
		RecordedBy:  recordedBy,
		CreatedAt:   time.Now(),
	}
	if err := uc.incomeRepo.Create(income); err != nil {
		return nil, err
	}
	return toIncomeResponse(income), nil
}

// ListIncome lista ingresos con fecha de negocio dentro de la ventana.
func (uc *FinanceUseCase) ListIncome(start, end time.Time) ([]*dto.IncomeResponse, error) {
	rows, err := uc.incomeRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IncomeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toIncomeResponse(r))
	}
	return out, nil
}

// CreateExpense registra un gasto.
func (uc *FinanceUseCase) CreateExpense(recordedBy string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: el gasto requiere descripción", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser positivo", domain.ErrInvalidInput)
	}
	date, err := parseBusinessDate(in.Date)
	if err != nil {
		return nil, err
	}
	expense := &entity.Expense{
		ID:            uuid.New().String(),
		Description:   in.Description,
		Amount:        in.Amount,
		Category:      in.Category,
		Vendor:        in.Vendor,
		ReceiptNumber: in.ReceiptNumber,
		Date:          date,
		RecordedBy:    recordedBy,
		CreatedAt:     time.Now(),
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// ListExpenses lista gastos con fecha de negocio dentro de la ventana.
func (uc *FinanceUseCase) ListExpenses(start, end time.Time) ([]*dto.ExpenseResponse, error) {
	rows, err := uc.expenseRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toExpenseResponse(r))
	}
	return out, nil
}

// parseBusinessDate parsea la fecha de negocio (solo fecha, sin hora).
func parseBusinessDate(s string) (time.Time, error) {
	date, err := time.Parse(businessDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q (se espera YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	return date, nil
}

func toIncomeResponse(i *entity.Income) *dto.IncomeResponse {
	return &dto.IncomeResponse{
		ID:          i.ID,
		Description: i.Description,
		Amount:      i.Amount,
		Category:    i.Category,
		Source:      i.Source,
		Date:        i.Date.Format(businessDateLayout),
		RecordedBy:  i.RecordedBy,
		CreatedAt:   i.CreatedAt,
	}
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		Description:   e.Description,
		Amount:        e.Amount,
		Category:      e.Category,
		Vendor:        e.Vendor,
		ReceiptNumber: e.ReceiptNumber,
		Date:          e.Date.Format(businessDateLayout),
		RecordedBy:    e.RecordedBy,
		CreatedAt:     e.CreatedAt,
	}
}
