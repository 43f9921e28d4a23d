package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercadolivro-api/internal/application/auth"
	"github.com/jhoicas/mercadolivro-api/internal/application/billing"
	"github.com/jhoicas/mercadolivro-api/internal/application/usecase"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerSvc *usecase.CustomerService
	BookSvc     *usecase.BookService
	PurchaseUC  *billing.PurchaseUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authMw := AuthMiddleware(deps.JWTSecret, deps.AuthUC)
	selfOrAdmin := RequireSelfOrAdmin("id")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)

	// Customers: alta pública, el resto con dueño o ADMIN
	customers := app.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerSvc)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", authMw, RequireRole(entity.RoleAdmin), customerHandler.List)
	customers.Get("/:id", authMw, selfOrAdmin, customerHandler.GetByID)
	customers.Put("/:id", authMw, selfOrAdmin, customerHandler.Update)
	customers.Delete("/:id", authMw, selfOrAdmin, customerHandler.Delete)
	customers.Get("/:id/purchases", authMw, selfOrAdmin, purchaseHandler.ListByCustomer)

	// Books: lectura pública, escritura autenticada
	books := app.Group("/books")
	bookHandler := NewBookHandler(deps.BookSvc)
	books.Get("/", bookHandler.List)
	books.Get("/active", bookHandler.ListActive)
	books.Get("/:id", bookHandler.GetByID)
	books.Post("/", authMw, bookHandler.Create)
	books.Put("/:id", authMw, bookHandler.Update)
	books.Delete("/:id", authMw, bookHandler.Delete)

	// Purchases (protegido)
	app.Post("/purchases", authMw, purchaseHandler.Create)

	// Admin
	adminHandler := NewAdminHandler()
	app.Get("/admin/report", authMw, RequireRole(entity.RoleAdmin), adminHandler.Report)
}
