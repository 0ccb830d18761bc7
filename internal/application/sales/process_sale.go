package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/restopos-api/internal/application/dto"
	"github.com/jhoicas/restopos-api/internal/domain"
	"github.com/jhoicas/restopos-api/internal/domain/entity"
	"github.com/jhoicas/restopos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProcessSaleUseCase procesa el checkout de una orden: valida contra catálogo e
// inventario, calcula totales, persiste la venta con sus líneas y descuenta stock,
// todo dentro de una sola transacción (ver TxRunner).
//
// El id del cajero llega como parámetro explícito desde la capa HTTP autenticada;
// el caso de uso no conoce ningún "usuario actual" global.
type ProcessSaleUseCase struct {
	txRunner  TxRunner
	salesRepo repository.SalesTransactionRepository
	taxRate   decimal.Decimal
}

// NewProcessSaleUseCase construye el caso de uso. taxRate es la tasa de impuesto
// fija de la configuración (0.08 en el despliegue de referencia).
func NewProcessSaleUseCase(txRunner TxRunner, salesRepo repository.SalesTransactionRepository, taxRate decimal.Decimal) *ProcessSaleUseCase {
	return &ProcessSaleUseCase{txRunner: txRunner, salesRepo: salesRepo, taxRate: taxRate}
}

// pendingDecrement acumula la cantidad solicitada por insumo: varias líneas pueden
// correlacionar al mismo StockItem y el decremento se aplica una sola vez por fila.
type pendingDecrement struct {
	stock     *entity.StockItem
	requested decimal.Decimal
}

// ProcessSale ejecuta el checkout completo. Si el número de transacción choca con el
// constraint único, reintenta la unidad de trabajo entera una única vez con un número
// fresco; un segundo choque se propaga tal cual.
func (uc *ProcessSaleUseCase) ProcessSale(ctx context.Context, cashierID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if cashierID == "" {
		return nil, fmt.Errorf("%w: falta el cajero", domain.ErrInvalidOrder)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la orden no tiene líneas", domain.ErrInvalidOrder)
	}
	for _, line := range in.Items {
		if line.MenuItemID == "" || line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cada línea requiere ítem y cantidad positiva", domain.ErrInvalidOrder)
		}
	}
	if in.DiscountAmount.IsNegative() {
		return nil, fmt.Errorf("%w: el descuento no puede ser negativo", domain.ErrInvalidOrder)
	}
	// El descuento NO se valida contra el subtotal: un descuento mayor que la orden
	// se acepta y produce un final negativo. Comportamiento heredado, no endurecerlo
	// sin decisión de producto.

	number := newTransactionNumber()
	for attempt := 0; ; attempt++ {
		resp, err := uc.runSale(ctx, cashierID, in, number)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, domain.ErrDuplicate) && attempt == 0 {
			number = newTransactionNumber()
			continue
		}
		return nil, err
	}
}

// runSale es una unidad de trabajo atómica: cualquier error rueda atrás todo,
// incluido el número de transacción generado.
func (uc *ProcessSaleUseCase) runSale(ctx context.Context, cashierID string, in dto.CreateSaleRequest, number string) (*dto.SaleResponse, error) {
	var (
		tx    *entity.SalesTransaction
		lines []*entity.SalesTransactionItem
	)

	err := uc.txRunner.RunSale(ctx, func(
		menuRepo repository.MenuItemRepository,
		stockRepo repository.StockItemRepository,
		salesRepo repository.SalesTransactionRepository,
	) error {
		// 1) Catálogo: resolver todos los ids en una consulta. Cualquier id ausente
		// o ítem deshabilitado aborta la orden completa (sin escrituras todavía).
		ids := distinctIDs(in.Items)
		menuByID, err := menuRepo.GetByIDs(ids)
		if err != nil {
			return err
		}
		for _, line := range in.Items {
			item, ok := menuByID[line.MenuItemID]
			if !ok {
				return fmt.Errorf("ítem del menú %s: %w", line.MenuItemID, domain.ErrNotFound)
			}
			if !item.IsAvailable {
				return &domain.ItemUnavailableError{Name: item.Name}
			}
		}

		// 2) Inventario: correlación por nombre (case-insensitive) y reserva con la
		// fila bloqueada. Los ítems sin insumo correlacionado se venden sin chequeo:
		// el seguimiento de stock es oportunista, no obligatorio.
		pending := make(map[string]*pendingDecrement)
		var lockOrder []string
		for _, line := range in.Items {
			item := menuByID[line.MenuItemID]
			qty := decimal.NewFromInt(int64(line.Quantity))

			p, seen := pending[strings.ToLower(item.Name)]
			if seen {
				p.requested = p.requested.Add(qty)
				continue
			}
			stock, err := stockRepo.FindByNameForUpdate(item.Name)
			if err != nil {
				return err
			}
			if stock == nil {
				continue
			}
			key := strings.ToLower(item.Name)
			pending[key] = &pendingDecrement{stock: stock, requested: qty}
			lockOrder = append(lockOrder, key)
		}
		for _, key := range lockOrder {
			p := pending[key]
			if p.stock.CurrentQuantity.LessThan(p.requested) {
				return &domain.InsufficientStockError{
					Name:      p.stock.Name,
					Available: p.stock.CurrentQuantity,
					Requested: p.requested,
				}
			}
		}

		// 3) Totales: precio unitario = snapshot vivo del catálogo. line_total y el
		// subtotal son productos exactos de precio 2dp × entero; solo el impuesto
		// se redondea en el punto de cálculo.
		now := time.Now()
		txID := uuid.New().String()
		subtotal := decimal.Zero
		for _, line := range in.Items {
			item := menuByID[line.MenuItemID]
			qty := decimal.NewFromInt(int64(line.Quantity))
			lineTotal := item.Price.Mul(qty)
			subtotal = subtotal.Add(lineTotal)
			lines = append(lines, &entity.SalesTransactionItem{
				ID:            uuid.New().String(),
				TransactionID: txID,
				MenuItemID:    line.MenuItemID,
				Quantity:      line.Quantity,
				UnitPrice:     item.Price,
				TotalPrice:    lineTotal,
			})
		}
		tax := subtotal.Mul(uc.taxRate).Round(2)
		final := subtotal.Add(tax).Sub(in.DiscountAmount)

		// 4) Persistir cabecera y líneas. La venta nace completada.
		tx = &entity.SalesTransaction{
			ID:                txID,
			TransactionNumber: number,
			CustomerName:      in.CustomerName,
			TotalAmount:       subtotal,
			TaxAmount:         tax,
			DiscountAmount:    in.DiscountAmount,
			FinalAmount:       final,
			PaymentMethod:     in.PaymentMethod,
			Status:            entity.TransactionStatusCompleted,
			CashierID:         cashierID,
			CreatedAt:         now,
			CompletedAt:       &now,
		}
		if err := salesRepo.Create(tx); err != nil {
			return err
		}
		for _, it := range lines {
			if err := salesRepo.CreateItem(it); err != nil {
				return err
			}
		}

		// 5) Decrementar inventario en la misma transacción. last_restocked_at queda
		// intacto: una venta nunca es una reposición.
		for _, key := range lockOrder {
			p := pending[key]
			newQty := p.stock.CurrentQuantity.Sub(p.requested)
			if newQty.IsNegative() {
				return &domain.NegativeStockError{Name: p.stock.Name, Current: p.stock.CurrentQuantity, Delta: p.requested.Neg()}
			}
			p.stock.CurrentQuantity = newQty
			if err := stockRepo.Update(p.stock); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		lines = nil
		return nil, err
	}
	return toSaleResponse(tx, lines), nil
}

// GetTransaction obtiene una venta por id con sus líneas.
func (uc *ProcessSaleUseCase) GetTransaction(id string) (*dto.SaleResponse, error) {
	tx, err := uc.salesRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.salesRepo.GetItemsByTransactionID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(tx, items), nil
}

// ListTransactions lista ventas recientes (paginado simple, sin líneas).
func (uc *ProcessSaleUseCase) ListTransactions(limit, offset int) ([]*dto.SaleResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	txs, err := uc.salesRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toSaleResponse(tx, nil))
	}
	return out, nil
}

// newTransactionNumber genera un número candidato: milisegundos unix + sufijo
// aleatorio. La unicidad real la garantiza el constraint de la base; ante un choque
// el caso de uso reintenta una vez con un número fresco.
func newTransactionNumber() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), suffix)
}

func distinctIDs(items []dto.SaleLineInput) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.MenuItemID]; ok {
			continue
		}
		seen[it.MenuItemID] = struct{}{}
		ids = append(ids, it.MenuItemID)
	}
	return ids
}

func toSaleResponse(tx *entity.SalesTransaction, items []*entity.SalesTransactionItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:                tx.ID,
		TransactionNumber: tx.TransactionNumber,
		CustomerName:      tx.CustomerName,
		TotalAmount:       tx.TotalAmount,
		TaxAmount:         tx.TaxAmount,
		DiscountAmount:    tx.DiscountAmount,
		FinalAmount:       tx.FinalAmount,
		PaymentMethod:     tx.PaymentMethod,
		Status:            tx.Status,
		CashierID:         tx.CashierID,
		CreatedAt:         tx.CreatedAt,
		CompletedAt:       tx.CompletedAt,
		Items:             make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return resp
}
