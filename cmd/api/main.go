package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/restopos-api/internal/application/auth"
	"github.com/jhoicas/restopos-api/internal/application/inventory"
	"github.com/jhoicas/restopos-api/internal/application/reports"
	"github.com/jhoicas/restopos-api/internal/application/sales"
	"github.com/jhoicas/restopos-api/internal/application/usecase"
	"github.com/jhoicas/restopos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/restopos-api/internal/interfaces/http"
	"github.com/jhoicas/restopos-api/pkg/config"
	"github.com/jhoicas/restopos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewMenuCategoryRepository(pool)
	menuRepo := postgres.NewMenuItemRepository(pool)
	stockRepo := postgres.NewStockItemRepository(pool)
	salesRepo := postgres.NewSalesTransactionRepository(pool)
	incomeRepo := postgres.NewIncomeRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	menuUC := usecase.NewMenuUseCase(menuRepo, categoryRepo)
	stockUC := usecase.NewStockUseCase(stockRepo)
	ledgerUC := inventory.NewStockLedgerUseCase(txRunner, stockRepo)
	saleUC := sales.NewProcessSaleUseCase(txRunner, salesRepo, cfg.POS.TaxRate)
	reportUC := reports.NewReportUseCase(reportRepo)
	financeUC := usecase.NewFinanceUseCase(incomeRepo, expenseRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		MenuUC:    menuUC,
		StockUC:   stockUC,
		Ledger:    ledgerUC,
		SaleUC:    saleUC,
		ReportUC:  reportUC,
		FinanceUC: financeUC,
		UserUC:    userUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
