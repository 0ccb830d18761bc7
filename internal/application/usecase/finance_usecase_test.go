package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restopos-api/internal/application/dto"
	"github.com/jhoicas/restopos-api/internal/application/usecase"
	"github.com/jhoicas/restopos-api/internal/domain"
	"github.com/jhoicas/restopos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeIncomeRepo struct {
	rows []*entity.Income
}

func (f *fakeIncomeRepo) Create(income *entity.Income) error {
	f.rows = append(f.rows, income)
	return nil
}

func (f *fakeIncomeRepo) ListByDateRange(start, end time.Time) ([]*entity.Income, error) {
	var out []*entity.Income
	for _, r := range f.rows {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeExpenseRepo struct {
	rows []*entity.Expense
}

func (f *fakeExpenseRepo) Create(expense *entity.Expense) error {
	f.rows = append(f.rows, expense)
	return nil
}

func (f *fakeExpenseRepo) ListByDateRange(start, end time.Time) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, r := range f.rows {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

const testRecordedBy = "00000000-0000-0000-0000-0000000000aa"

func buildFinance() (*usecase.FinanceUseCase, *fakeIncomeRepo, *fakeExpenseRepo) {
	incomes := &fakeIncomeRepo{}
	expenses := &fakeExpenseRepo{}
	return usecase.NewFinanceUseCase(incomes, expenses), incomes, expenses
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingresos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateIncome_GuardaFechaDeNegocio(t *testing.T) {
	uc, incomes, _ := buildFinance()

	resp, err := uc.CreateIncome(testRecordedBy, dto.CreateIncomeRequest{
		Description: "Alquiler de salón",
		Amount:      dec("150.00"),
		Category:    "events",
		Date:        "2026-08-20",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-20", resp.Date, "la fecha de negocio se conserva tal cual")
	assert.Equal(t, testRecordedBy, resp.RecordedBy)
	require.Len(t, incomes.rows, 1)
	assert.False(t, incomes.rows[0].CreatedAt.IsZero(),
		"created_at de auditoría es independiente de la fecha de negocio")
}

func TestCreateIncome_MontoNoPositivo_Rechaza(t *testing.T) {
	uc, _, _ := buildFinance()
	for _, amount := range []string{"0", "-5"} {
		_, err := uc.CreateIncome(testRecordedBy, dto.CreateIncomeRequest{
			Description: "x", Amount: dec(amount), Date: "2026-08-20",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto %s debe rechazarse", amount)
	}
}

func TestCreateIncome_FechaInvalida_Rechaza(t *testing.T) {
	uc, _, _ := buildFinance()
	_, err := uc.CreateIncome(testRecordedBy, dto.CreateIncomeRequest{
		Description: "x", Amount: dec("10"), Date: "20/08/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateExpense_Y_ListaPorVentana(t *testing.T) {
	uc, _, _ := buildFinance()

	_, err := uc.CreateExpense(testRecordedBy, dto.CreateExpenseRequest{
		Description: "Proveedor de verduras",
		Amount:      dec("82.40"),
		Category:    "supplies",
		Vendor:      "AgroMarket",
		Date:        "2026-08-10",
	})
	require.NoError(t, err)
	_, err = uc.CreateExpense(testRecordedBy, dto.CreateExpenseRequest{
		Description: "Gas",
		Amount:      dec("30.00"),
		Date:        "2026-09-02",
	})
	require.NoError(t, err)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	got, err := uc.ListExpenses(start, end)
	require.NoError(t, err)
	require.Len(t, got, 1, "solo el gasto de agosto cae en la ventana")
	assert.Equal(t, "Proveedor de verduras", got[0].Description)
}

func TestCreateExpense_SinDescripcion_Rechaza(t *testing.T) {
	uc, _, _ := buildFinance()
	_, err := uc.CreateExpense(testRecordedBy, dto.CreateExpenseRequest{
		Description: "   ", Amount: dec("10"), Date: "2026-08-20",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
