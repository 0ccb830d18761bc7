package dto

import "github.com/shopspring/decimal"

// TopSellingItemDTO ítem del ranking de ventas (máximo 10 filas).
// El porcentaje sobre el total lo deriva el cliente (revenue / total_sales).
type TopSellingItemDTO struct {
	MenuItemID   string          `json:"menu_item_id"`
	ItemName     string          `json:"item_name"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// SalesReportDTO resumen de ventas del período.
type SalesReportDTO struct {
	Period             string              `json:"period"`
	TotalSales         decimal.Decimal     `json:"total_sales"`
	TotalTransactions  int64               `json:"total_transactions"`
	AverageTransaction decimal.Decimal     `json:"average_transaction"`
	TopSellingItems    []TopSellingItemDTO `json:"top_selling_items"`
}

// LowStockItemDTO insumo por debajo de su mínimo (comparación estricta <).
type LowStockItemDTO struct {
	Name            string          `json:"name"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
	Status          string          `json:"status"`
}

// StockReportDTO estado del inventario completo (sin ventana de fechas).
type StockReportDTO struct {
	TotalItems    int64             `json:"total_items"`
	LowStockItems []LowStockItemDTO `json:"low_stock_items"`
	StockValue    decimal.Decimal   `json:"stock_value"`
}

// ProfitLossReportDTO estado de resultados del período.
// GrossProfit excluye deliberadamente los ingresos no provenientes de ventas.
type ProfitLossReportDTO struct {
	Period        string          `json:"period"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	GrossProfit   decimal.Decimal `json:"gross_profit"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"`
}
