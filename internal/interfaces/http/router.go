package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/restopos-api/internal/application/auth"
	"github.com/jhoicas/restopos-api/internal/application/inventory"
	"github.com/jhoicas/restopos-api/internal/application/reports"
	"github.com/jhoicas/restopos-api/internal/application/sales"
	"github.com/jhoicas/restopos-api/internal/application/usecase"
	"github.com/jhoicas/restopos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	MenuUC    *usecase.MenuUseCase
	StockUC   *usecase.StockUseCase
	Ledger    *inventory.StockLedgerUseCase
	SaleUC    *sales.ProcessSaleUseCase
	ReportUC  *reports.ReportUseCase
	FinanceUC *usecase.FinanceUseCase
	UserUC    *usecase.UserUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	manage := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Menú: lectura para todos los roles, escritura para manager/admin
	menu := protected.Group("/menu")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu.Get("/categories", menuHandler.ListCategories)
	menu.Post("/categories", manage, menuHandler.CreateCategory)
	menu.Get("/items", menuHandler.ListItems)
	menu.Get("/items/:id", menuHandler.GetItem)
	menu.Post("/items", manage, menuHandler.CreateItem)
	menu.Put("/items/:id", manage, menuHandler.UpdateItem)

	// Inventario: lectura para todos, altas y ajustes para manager/admin
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.Ledger)
	stock.Get("/", stockHandler.List)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Post("/", manage, stockHandler.Create)
	stock.Patch("/:id/quantity", manage, stockHandler.Adjust)

	// Ventas: cualquier usuario autenticado (el cajero sale del token)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Reportes: manager/admin
	reportsGroup := protected.Group("/reports", manage)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales", reportHandler.Sales)
	reportsGroup.Get("/stock", reportHandler.Stock)
	reportsGroup.Get("/profit-loss", reportHandler.ProfitLoss)

	// Finanzas: manager/admin
	finance := protected.Group("/finance", manage)
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	finance.Post("/income", financeHandler.CreateIncome)
	finance.Get("/income", financeHandler.ListIncome)
	finance.Post("/expenses", financeHandler.CreateExpense)
	finance.Get("/expenses", financeHandler.ListExpenses)

	// Usuarios: solo admin
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
}
