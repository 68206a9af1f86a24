package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	UserUC    *usecase.UserUseCase
	Withdraw  *inventory.WithdrawUseCase
	Report    *report.MonthlyReportUseCase
	Log       zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	inventoryHandler := NewInventoryHandler(deps.Withdraw, deps.ProductUC, deps.Log)

	// Products
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/movements", inventoryHandler.ListMovements)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Retiros de stock
	invGroup := api.Group("/inventory")
	invGroup.Post("/withdrawals", inventoryHandler.Withdraw)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Report, deps.Log)
	reports.Get("/monthly", reportHandler.Monthly)
}
