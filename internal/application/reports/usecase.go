package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restopos-api/internal/application/dto"
	"github.com/jhoicas/restopos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const topSellingLimit = 10

// ReportUseCase arma los tres reportes financieros a partir de consultas de solo
// lectura. No muta datos; puede correr concurrente con ventas con la consistencia
// normal del store.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el motor de reportes.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// GetSalesReport resume las ventas completadas con completed_at en [start, end]:
// total, cantidad, promedio (redondeado a 2 decimales, 0 sin ventas) y el top 10
// de ítems por cantidad vendida.
func (uc *ReportUseCase) GetSalesReport(ctx context.Context, start, end time.Time) (*dto.SalesReportDTO, error) {
	total, count, err := uc.repo.GetSalesTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}
	average := decimal.Zero
	if count > 0 {
		average = total.Div(decimal.NewFromInt(count)).Round(2)
	}

	rows, err := uc.repo.GetTopSellingItems(ctx, start, end, topSellingLimit)
	if err != nil {
		return nil, err
	}
	top := make([]dto.TopSellingItemDTO, 0, len(rows))
	for _, row := range rows {
		top = append(top, dto.TopSellingItemDTO{
			MenuItemID:   row.MenuItemID,
			ItemName:     row.ItemName,
			QuantitySold: row.QuantitySold,
			Revenue:      row.Revenue,
		})
	}

	return &dto.SalesReportDTO{
		Period:             formatPeriod(start, end),
		TotalSales:         total,
		TotalTransactions:  count,
		AverageTransaction: average,
		TopSellingItems:    top,
	}, nil
}

// GetStockReport fotografía el inventario completo actual (sin ventana de fechas).
// "Bajo mínimo" es current_quantity < minimum_quantity, estrictamente: quedar
// exactamente en el mínimo no aparece aquí. El badge de la UI usa <=; la
// discrepancia está documentada y se conserva a propósito.
func (uc *ReportUseCase) GetStockReport(ctx context.Context) (*dto.StockReportDTO, error) {
	totalItems, err := uc.repo.CountStockItems(ctx)
	if err != nil {
		return nil, err
	}
	lowRows, err := uc.repo.GetLowStockItems(ctx)
	if err != nil {
		return nil, err
	}
	value, err := uc.repo.GetStockValue(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]dto.LowStockItemDTO, 0, len(lowRows))
	for _, row := range lowRows {
		low = append(low, dto.LowStockItemDTO{
			Name:            row.Name,
			CurrentQuantity: row.CurrentQuantity,
			MinimumQuantity: row.MinimumQuantity,
			Status:          "low_stock",
		})
	}

	return &dto.StockReportDTO{
		TotalItems:    totalItems,
		LowStockItems: low,
		StockValue:    value,
	}, nil
}

// GetProfitLossReport arma el estado de resultados del período.
// total_revenue = ventas completadas + otros ingresos; gross_profit excluye los
// otros ingresos (asimetría heredada, no "corregirla"); el margen se protege contra
// división por cero, pero solo ese ratio.
func (uc *ReportUseCase) GetProfitLossReport(ctx context.Context, start, end time.Time) (*dto.ProfitLossReportDTO, error) {
	salesRevenue, _, err := uc.repo.GetSalesTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}
	otherIncome, err := uc.repo.GetOtherIncome(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.repo.GetTotalExpenses(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totalRevenue := salesRevenue.Add(otherIncome)
	grossProfit := salesRevenue.Sub(expenses)
	netProfit := totalRevenue.Sub(expenses)
	margin := decimal.Zero
	if totalRevenue.IsPositive() {
		margin = netProfit.Div(totalRevenue).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &dto.ProfitLossReportDTO{
		Period:        formatPeriod(start, end),
		TotalRevenue:  totalRevenue,
		TotalExpenses: expenses,
		GrossProfit:   grossProfit,
		NetProfit:     netProfit,
		ProfitMargin:  margin,
	}, nil
}

func formatPeriod(start, end time.Time) string {
	return fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}
