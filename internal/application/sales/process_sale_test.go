package sales_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restopos-api/internal/application/dto"
	"github.com/jhoicas/restopos-api/internal/application/sales"
	"github.com/jhoicas/restopos-api/internal/domain"
	"github.com/jhoicas/restopos-api/internal/domain/entity"
	"github.com/jhoicas/restopos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// El TxRunner fake pasa los repos directamente: como el caso de uso valida todo
// antes de escribir, un error deja los fakes sin tocar igual que un rollback real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeMenuRepo struct {
	items map[string]*entity.MenuItem
}

func (f *fakeMenuRepo) Create(item *entity.MenuItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	return f.items[id], nil
}

func (f *fakeMenuRepo) GetByIDs(ids []string) (map[string]*entity.MenuItem, error) {
	out := make(map[string]*entity.MenuItem)
	for _, id := range ids {
		if it, ok := f.items[id]; ok {
			out[id] = it
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) List(availableOnly bool) ([]*entity.MenuItem, error) {
	var out []*entity.MenuItem
	for _, it := range f.items {
		if availableOnly && !it.IsAvailable {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeMenuRepo) Update(item *entity.MenuItem) error {
	f.items[item.ID] = item
	return nil
}

type fakeStockRepo struct {
	items map[string]*entity.StockItem // por id
}

func (f *fakeStockRepo) Create(item *entity.StockItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeStockRepo) GetByID(id string) (*entity.StockItem, error)          { return f.items[id], nil }
func (f *fakeStockRepo) GetByIDForUpdate(id string) (*entity.StockItem, error) { return f.items[id], nil }

func (f *fakeStockRepo) FindByName(name string) (*entity.StockItem, error) {
	for _, it := range f.items {
		if strings.EqualFold(it.Name, name) {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeStockRepo) FindByNameForUpdate(name string) (*entity.StockItem, error) {
	return f.FindByName(name)
}

func (f *fakeStockRepo) Update(item *entity.StockItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeStockRepo) List() ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

type fakeSalesRepo struct {
	headers []*entity.SalesTransaction
	lines   []*entity.SalesTransactionItem

	attemptedNumbers []string
	failFirstCreate  bool // simula choque del constraint único en el primer intento
}

func (f *fakeSalesRepo) Create(tx *entity.SalesTransaction) error {
	f.attemptedNumbers = append(f.attemptedNumbers, tx.TransactionNumber)
	if f.failFirstCreate && len(f.attemptedNumbers) == 1 {
		return fmt.Errorf("transaction number %s: %w", tx.TransactionNumber, domain.ErrDuplicate)
	}
	f.headers = append(f.headers, tx)
	return nil
}

func (f *fakeSalesRepo) CreateItem(item *entity.SalesTransactionItem) error {
	f.lines = append(f.lines, item)
	return nil
}

func (f *fakeSalesRepo) GetByID(id string) (*entity.SalesTransaction, error) {
	for _, tx := range f.headers {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}

func (f *fakeSalesRepo) GetItemsByTransactionID(transactionID string) ([]*entity.SalesTransactionItem, error) {
	var out []*entity.SalesTransactionItem
	for _, it := range f.lines {
		if it.TransactionID == transactionID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeSalesRepo) List(limit, offset int) ([]*entity.SalesTransaction, error) {
	return f.headers, nil
}

type fakeTxRunner struct {
	menu  *fakeMenuRepo
	stock *fakeStockRepo
	sales repository.SalesTransactionRepository
}

func (f *fakeTxRunner) RunSale(ctx context.Context, fn func(
	menuRepo repository.MenuItemRepository,
	stockRepo repository.StockItemRepository,
	salesRepo repository.SalesTransactionRepository,
) error) error {
	return fn(f.menu, f.stock, f.sales)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const testCashierID = "00000000-0000-0000-0000-00000000c0de"

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func buildFixture() (*sales.ProcessSaleUseCase, *fakeMenuRepo, *fakeStockRepo, *fakeSalesRepo) {
	restocked := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	menu := &fakeMenuRepo{items: map[string]*entity.MenuItem{
		"burger": {ID: "burger", Name: "Burger", Price: dec("15.99"), IsAvailable: true},
		"soda":   {ID: "soda", Name: "Soda", Price: dec("8.50"), IsAvailable: true},
		"helado": {ID: "helado", Name: "Helado", Price: dec("4.25"), IsAvailable: false},
		"cafe":   {ID: "cafe", Name: "Café", Price: dec("3.00"), IsAvailable: true}, // sin insumo correlacionado
	}}
	stock := &fakeStockRepo{items: map[string]*entity.StockItem{
		"stk-burger": {ID: "stk-burger", Name: "burger", CurrentQuantity: dec("50"), MinimumQuantity: dec("10"), UnitCost: dec("4.00"), LastRestockedAt: &restocked},
		"stk-soda":   {ID: "stk-soda", Name: "Soda", CurrentQuantity: dec("2"), MinimumQuantity: dec("5"), UnitCost: dec("0.80")},
	}}
	salesRepo := &fakeSalesRepo{}
	runner := &fakeTxRunner{menu: menu, stock: stock, sales: salesRepo}
	uc := sales.NewProcessSaleUseCase(runner, salesRepo, dec("0.08"))
	return uc, menu, stock, salesRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout feliz
// ──────────────────────────────────────────────────────────────────────────────

// Burger 15.99 × 2 + Soda 8.50 × 1, descuento 2.00, impuesto 8%:
// subtotal 40.48, tax round2(3.2384) = 3.24, final 41.72.
func TestProcessSale_TotalesExactos(t *testing.T) {
	uc, _, _, _ := buildFixture()

	resp, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		CustomerName:   "Mesa 4",
		PaymentMethod:  "cash",
		DiscountAmount: dec("2.00"),
		Items: []dto.SaleLineInput{
			{MenuItemID: "burger", Quantity: 2},
			{MenuItemID: "soda", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, dec("40.48").Equal(resp.TotalAmount), "subtotal: esperado 40.48, obtenido %s", resp.TotalAmount)
	assert.True(t, dec("3.24").Equal(resp.TaxAmount), "impuesto: esperado 3.24, obtenido %s", resp.TaxAmount)
	assert.True(t, dec("41.72").Equal(resp.FinalAmount), "final: esperado 41.72, obtenido %s", resp.FinalAmount)
	assert.Equal(t, entity.TransactionStatusCompleted, resp.Status)
	assert.Equal(t, testCashierID, resp.CashierID)
	assert.NotNil(t, resp.CompletedAt)
	assert.True(t, strings.HasPrefix(resp.TransactionNumber, "TXN-"))
	require.Len(t, resp.Items, 2)
}

// El precio unitario es el snapshot vivo del catálogo, nunca lo que mande el cliente.
func TestProcessSale_PrecioEsSnapshotDelCatalogo(t *testing.T) {
	uc, menu, _, salesRepo := buildFixture()
	menu.items["burger"].Price = dec("17.50") // cambio de precio antes del checkout

	_, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineInput{{MenuItemID: "burger", Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, salesRepo.lines, 1)
	assert.True(t, dec("17.50").Equal(salesRepo.lines[0].UnitPrice),
		"la línea debe llevar el precio vigente del catálogo")
}

// La venta descuenta el insumo correlacionado por nombre (case-insensitive:
// ítem "Burger" ↔ insumo "burger") y NO toca last_restocked_at.
func TestProcessSale_DescuentaStockSinMoverRestockedAt(t *testing.T) {
	uc, _, stock, _ := buildFixture()
	before := *stock.items["stk-burger"].LastRestockedAt

	_, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineInput{{MenuItemID: "burger", Quantity: 3}},
	})
	require.NoError(t, err)

	assert.True(t, dec("47").Equal(stock.items["stk-burger"].CurrentQuantity),
		"stock: esperado 47, obtenido %s", stock.items["stk-burger"].CurrentQuantity)
	require.NotNil(t, stock.items["stk-burger"].LastRestockedAt)
	assert.Equal(t, before, *stock.items["stk-burger"].LastRestockedAt,
		"una venta nunca es una reposición")
}

// Dos líneas del mismo ítem se agregan y el insumo se descuenta una sola vez
// por el total (sin lost update entre líneas duplicadas).
func TestProcessSale_LineasDuplicadasSeAgregan(t *testing.T) {
	uc, _, stock, _ := buildFixture()

	_, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineInput{
			{MenuItemID: "burger", Quantity: 2},
			{MenuItemID: "burger", Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.True(t, dec("45").Equal(stock.items["stk-burger"].CurrentQuantity),
		"el decremento debe ser el agregado 5, no el de la última línea")
}

// Un ítem sin insumo correlacionado se vende sin chequeo de inventario.
func TestProcessSale_ItemSinInsumoSeVende(t *testing.T) {
	uc, _, _, salesRepo := buildFixture()

	resp, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineInput{{MenuItemID: "cafe", Quantity: 10}},
	})
	require.NoError(t, err)
	assert.True(t, dec("30").Equal(resp.TotalAmount))
	assert.Len(t, salesRepo.headers, 1)
}

// El descuento no se acota: mayor que la orden produce un final negativo.
func TestProcessSale_DescuentoMayorQueOrden_FinalNegativo(t *testing.T) {
	uc, _, _, _ := buildFixture()

	resp, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		DiscountAmount: dec("100.00"),
		Items:          []dto.SaleLineInput{{MenuItemID: "soda", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, resp.FinalAmount.IsNegative(),
		"descuento 100 sobre orden de 9.18 debe dar final negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos: la orden completa aborta sin escrituras
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessSale_ItemInexistente_NotFound(t *testing.T) {
	uc, _, stock, salesRepo := buildFixture()

	_, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineInput{
			{MenuItemID: "burger", Quantity: 1},
			{MenuItemID: "no-existe", Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, salesRepo.headers, "la venta no debe persistirse")
	assert.True(t, dec("50").Equal(stock.items["stk-burger"].CurrentQuantity), "el stock no debe tocarse")
}

func TestProcessSale_ItemNoDisponible_Conflict(t *testing.T) {
	uc, _, _, salesRepo := buildFixture()

	_, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineInput{{MenuItemID: "helado", Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemUnavailable)

	var unavailable *domain.ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Helado", unavailable.Name)
	assert.Empty(t, salesRepo.headers)
}

func TestProcessSale_StockInsuficiente_Conflict(t *testing.T) {
	uc, _, stock, salesRepo := buildFixture()

	_, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineInput{{MenuItemID: "soda", Quantity: 3}}, // quedan 2
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, dec("2").Equal(insufficient.Available))
	assert.True(t, dec("3").Equal(insufficient.Requested))
	assert.Empty(t, salesRepo.headers)
	assert.True(t, dec("2").Equal(stock.items["stk-soda"].CurrentQuantity))
}

func TestProcessSale_OrdenVacia_InvalidOrder(t *testing.T) {
	uc, _, _, _ := buildFixture()
	_, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
}

func TestProcessSale_CantidadNoPositiva_InvalidOrder(t *testing.T) {
	uc, _, _, _ := buildFixture()
	for _, qty := range []int{0, -2} {
		_, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
			Items: []dto.SaleLineInput{{MenuItemID: "burger", Quantity: qty}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidOrder, "cantidad %d debe rechazarse", qty)
	}
}

func TestProcessSale_DescuentoNegativo_InvalidOrder(t *testing.T) {
	uc, _, _, _ := buildFixture()
	_, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		DiscountAmount: dec("-1"),
		Items:          []dto.SaleLineInput{{MenuItemID: "burger", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
}

func TestProcessSale_SinCajero_InvalidOrder(t *testing.T) {
	uc, _, _, _ := buildFixture()
	_, err := uc.ProcessSale(context.Background(), "", dto.CreateSaleRequest{
		Items: []dto.SaleLineInput{{MenuItemID: "burger", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reintento por choque del número de transacción
// ──────────────────────────────────────────────────────────────────────────────

// El primer insert choca con el constraint único; el caso de uso reintenta la
// unidad de trabajo completa una vez con un número fresco y la venta sale.
func TestProcessSale_ChoqueDeNumero_ReintentaUnaVez(t *testing.T) {
	uc, _, stock, salesRepo := buildFixture()
	salesRepo.failFirstCreate = true

	resp, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineInput{{MenuItemID: "burger", Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, salesRepo.attemptedNumbers, 2, "debe haber exactamente dos intentos")
	assert.NotEqual(t, salesRepo.attemptedNumbers[0], salesRepo.attemptedNumbers[1],
		"el reintento debe usar un número fresco")
	assert.Equal(t, salesRepo.attemptedNumbers[1], resp.TransactionNumber)
	assert.Len(t, salesRepo.headers, 1, "solo la venta del reintento debe persistirse")
	assert.True(t, dec("49").Equal(stock.items["stk-burger"].CurrentQuantity),
		"el stock debe descontarse una sola vez")
}

// Un segundo choque ya no se reintenta: el error sube tal cual.
func TestProcessSale_DobleChoque_Propaga(t *testing.T) {
	alwaysFail := &alwaysDuplicateSalesRepo{}
	uc := sales.NewProcessSaleUseCase(
		&fakeTxRunner{menu: fixtureMenu(), stock: &fakeStockRepo{items: map[string]*entity.StockItem{}}, sales: alwaysFail},
		alwaysFail, dec("0.08"),
	)

	_, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineInput{{MenuItemID: "burger", Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 2, alwaysFail.calls, "exactamente un reintento, no un loop")
}

type alwaysDuplicateSalesRepo struct {
	fakeSalesRepo
	calls int
}

func (f *alwaysDuplicateSalesRepo) Create(tx *entity.SalesTransaction) error {
	f.calls++
	return fmt.Errorf("transaction number %s: %w", tx.TransactionNumber, domain.ErrDuplicate)
}

func fixtureMenu() *fakeMenuRepo {
	return &fakeMenuRepo{items: map[string]*entity.MenuItem{
		"burger": {ID: "burger", Name: "Burger", Price: dec("15.99"), IsAvailable: true},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetTransaction_IncluyeLineas(t *testing.T) {
	uc, _, _, _ := buildFixture()

	created, err := uc.ProcessSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleLineInput{{MenuItemID: "burger", Quantity: 2}, {MenuItemID: "soda", Quantity: 1}},
	})
	require.NoError(t, err)

	got, err := uc.GetTransaction(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.TransactionNumber, got.TransactionNumber)
	assert.Len(t, got.Items, 2)
}

func TestGetTransaction_Inexistente_NotFound(t *testing.T) {
	uc, _, _, _ := buildFixture()
	_, err := uc.GetTransaction("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessSale_ErroresTipados_NoSonDuplicate(t *testing.T) {
	// Sanidad del árbol de errores: los conflictos de inventario no deben
	// confundirse con el choque de número (que sí dispara reintento).
	err := &domain.InsufficientStockError{Name: "Soda", Available: dec("2"), Requested: dec("3")}
	assert.False(t, errors.Is(err, domain.ErrDuplicate))
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}
