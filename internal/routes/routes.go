// Package routes defines the API routing configuration. It wires the store,
// cache and services together and registers every HTTP route.
package routes

import (
	"finflow/internal/handlers"
	"finflow/internal/middleware"
	"finflow/internal/models"
	"finflow/internal/repositories"
	"finflow/internal/services/auth"
	"finflow/internal/services/transfer"
	"finflow/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies holds everything the routes need. The store and cache are
// constructed by the entry point and injected; nothing here is a process
// global.
type Dependencies struct {
	Repo         repositories.TransactionRepository
	BalanceCache wallet.BalanceCache
	Metrics      wallet.MetricsCollector
	DemoUsers    []models.User
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	walletService := wallet.NewService(deps.Repo, deps.BalanceCache, wallet.Config{}, deps.Metrics)
	transferService := transfer.NewService(deps.Repo, walletService, deps.BalanceCache)
	authService := auth.NewService(deps.DemoUsers)

	authHandler := handlers.NewAuthHandler(authService)
	walletHandler := handlers.NewWalletHandler(walletService)
	transferHandler := handlers.NewTransferHandler(transferService)
	transactionHandler := handlers.NewTransactionHandler(deps.Repo)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to FinFlow API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/refresh", authHandler.RefreshToken)

	// Authenticated endpoints
	authed := api.Use(middleware.Auth)
	authed.Get("/transactions", transactionHandler.ListTransactions)
	authed.Get("/transactions/export", transactionHandler.ExportTransactions)
	authed.Post("/fund", walletHandler.Fund)
	authed.Post("/transfer", transferHandler.Transfer)
	authed.Get("/balance", walletHandler.GetBalance)
}
