package handler

import (
	"go-faktur-api/internal/middleware"
	"go-faktur-api/internal/model"
	"go-faktur-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles everything RegisterRoutes needs to build the route
// table. Kept separate from main so tests can mount the same routes.
type Handlers struct {
	Auth            *AuthHandler
	Category        *CategoryHandler
	Product         *ProductHandler
	Supplier        *SupplierHandler
	Transaction     *TransactionHandler
	TransactionItem *TransactionItemHandler
	User            *UserHandler
	Tokens          *jwt.Service
}

// RegisterRoutes mounts the API under /api. Authentication always runs
// before the role allow-list on protected routes.
func RegisterRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	auth := middleware.RequireAuth(h.Tokens)
	adminOnly := middleware.RequireRoles(model.RoleAdmin)
	adminOrStaff := middleware.RequireRoles(model.RoleAdmin, model.RoleStaff)

	// ============ PUBLIC ROUTES ============
	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)

	// ============ PROTECTED ROUTES ============
	product := api.Group("/product", auth)
	product.Get("/", adminOrStaff, h.Product.GetAll)
	product.Get("/code/:code", adminOrStaff, h.Product.GetByCode)
	product.Get("/category/:id", adminOrStaff, h.Product.GetByCategory)
	product.Get("/supplier/:id", adminOrStaff, h.Product.GetBySupplier)
	product.Get("/:id", adminOrStaff, h.Product.GetByID)
	product.Post("/", adminOnly, h.Product.Create)
	product.Put("/:id", adminOrStaff, h.Product.Update)
	product.Delete("/:id", adminOrStaff, h.Product.Delete)

	categories := api.Group("/categories", auth, adminOnly)
	categories.Get("/", h.Category.GetAll)
	categories.Get("/:id", h.Category.GetByID)
	categories.Post("/", h.Category.Create)
	categories.Put("/:id", h.Category.Update)
	categories.Delete("/:id", h.Category.Delete)

	users := api.Group("/users", auth, adminOnly)
	users.Get("/", h.User.GetAll)
	users.Get("/:id", h.User.GetByID)
	users.Put("/:id/role", h.User.UpdateRole)

	suppliers := api.Group("/suppliers", auth)
	suppliers.Get("/", adminOrStaff, h.Supplier.GetAll)
	suppliers.Get("/:id", adminOrStaff, h.Supplier.GetByID)
	suppliers.Post("/", adminOnly, h.Supplier.Create)
	suppliers.Put("/:id", adminOnly, h.Supplier.Update)
	suppliers.Delete("/:id", adminOnly, h.Supplier.Delete)

	transaksi := api.Group("/transaksi", auth, adminOrStaff)
	transaksi.Get("/", h.Transaction.GetAll)
	transaksi.Get("/:id", h.Transaction.GetByID)
	transaksi.Post("/", h.Transaction.Create)
	transaksi.Put("/:id", h.Transaction.Update)
	transaksi.Delete("/:id", h.Transaction.Delete)

	detail := api.Group("/detail_transaksi", auth)
	detail.Get("/", adminOnly, h.TransactionItem.GetAll)
	detail.Get("/:id", adminOrStaff, h.TransactionItem.GetByID)
	detail.Post("/", adminOrStaff, h.TransactionItem.Create)
	detail.Put("/:id", adminOrStaff, h.TransactionItem.Update)
	detail.Delete("/:id", adminOrStaff, h.TransactionItem.Delete)
}
