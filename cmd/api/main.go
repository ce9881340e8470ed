package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-faktur-api/internal/config"
	"go-faktur-api/internal/handler"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/repository"
	"go-faktur-api/internal/service"
	"go-faktur-api/internal/ws"
	"go-faktur-api/pkg/database"
	"go-faktur-api/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Setup Logger
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// 3. Setup Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Supplier{},
		&model.Product{}, &model.Transaction{}, &model.TransactionItem{},
	); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// 4. Seed default admin
	seedAdmin(db, cfg)

	// 5. Setup activity feed hub
	hub := ws.NewHub()
	go hub.Run()

	// 6. Dependency Injection (Wiring Layers)
	tokens := jwt.NewService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHrs)*time.Hour)

	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	productRepo := repository.NewProductRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)
	itemRepo := repository.NewTransactionItemRepo(db)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	supplierService := service.NewSupplierService(supplierRepo, db, hub)
	productService := service.NewProductService(productRepo, categoryRepo, supplierRepo, hub)
	transactionService := service.NewTransactionService(transactionRepo, userRepo, db, hub)
	itemService := service.NewTransactionItemService(itemRepo, transactionRepo, productRepo, supplierRepo)

	handlers := handler.Handlers{
		Auth:            handler.NewAuthHandler(authService),
		Category:        handler.NewCategoryHandler(categoryService),
		Product:         handler.NewProductHandler(productService),
		Supplier:        handler.NewSupplierHandler(supplierService),
		Transaction:     handler.NewTransactionHandler(transactionService),
		TransactionItem: handler.NewTransactionItemHandler(itemService),
		User:            handler.NewUserHandler(userService),
		Tokens:          tokens,
	}

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Faktur API v1.0",
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Faktur API")
	})

	handler.RegisterRoutes(app, handlers)

	// Activity feed websocket
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
	if err := database.Close(db); err != nil {
		slog.Error("failed to close database", "error", err)
	}
	slog.Info("server exited")
}

// seedAdmin creates the bootstrap admin account if it doesn't exist.
func seedAdmin(db *gorm.DB, cfg *config.Config) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail(cfg.AdminEmail); err == nil {
		return
	}

	admin := &model.User{
		Username: "admin",
		Email:    cfg.AdminEmail,
		Role:     model.RoleAdmin,
	}
	if err := admin.SetPassword(cfg.AdminPass); err != nil {
		slog.Warn("failed to hash admin password", "error", err)
		return
	}
	if err := userRepo.Create(admin); err != nil {
		slog.Warn("failed to create admin user", "error", err)
		return
	}
	slog.Info("admin user created", "email", cfg.AdminEmail)
}
