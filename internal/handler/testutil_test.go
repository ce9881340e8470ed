package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-faktur-api/internal/handler"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/repository"
	"go-faktur-api/internal/service"
	"go-faktur-api/internal/ws"
	"go-faktur-api/pkg/jwt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testContext holds the fully wired application over an in-memory
// database, plus ready-made admin and staff credentials.
type testContext struct {
	App        *fiber.App
	DB         *gorm.DB
	Tokens     *jwt.Service
	Admin      *model.User
	Staff      *model.User
	AdminToken string
	StaffToken string
}

func setupTestContext(t *testing.T) *testContext {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite: every pooled connection is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Supplier{},
		&model.Product{}, &model.Transaction{}, &model.TransactionItem{},
	))

	hub := ws.NewHub()
	go hub.Run()

	tokens := jwt.NewService("test-secret", time.Hour)

	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	productRepo := repository.NewProductRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)
	itemRepo := repository.NewTransactionItemRepo(db)

	handlers := handler.Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(userRepo, tokens)),
		Category: handler.NewCategoryHandler(service.NewCategoryService(categoryRepo)),
		Product: handler.NewProductHandler(
			service.NewProductService(productRepo, categoryRepo, supplierRepo, hub)),
		Supplier: handler.NewSupplierHandler(service.NewSupplierService(supplierRepo, db, hub)),
		Transaction: handler.NewTransactionHandler(
			service.NewTransactionService(transactionRepo, userRepo, db, hub)),
		TransactionItem: handler.NewTransactionItemHandler(
			service.NewTransactionItemService(itemRepo, transactionRepo, productRepo, supplierRepo)),
		User:   handler.NewUserHandler(service.NewUserService(userRepo)),
		Tokens: tokens,
	}

	app := fiber.New()
	handler.RegisterRoutes(app, handlers)

	admin := createUser(t, db, "admin", "admin@example.com", model.RoleAdmin)
	staff := createUser(t, db, "staff", "staff@example.com", model.RoleStaff)

	adminToken, err := tokens.Generate(admin.ID, admin.Role)
	require.NoError(t, err)
	staffToken, err := tokens.Generate(staff.ID, staff.Role)
	require.NoError(t, err)

	return &testContext{
		App:        app,
		DB:         db,
		Tokens:     tokens,
		Admin:      admin,
		Staff:      staff,
		AdminToken: adminToken,
		StaffToken: staffToken,
	}
}

func createUser(t *testing.T, db *gorm.DB, username, email, role string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: email, Role: role}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

// performRequest executes an HTTP request against the app, with an
// optional JSON body and bearer token.
func performRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

// seedCatalog inserts one category and one supplier for product tests.
func seedCatalog(t *testing.T, ctx *testContext) (*model.Category, *model.Supplier) {
	t.Helper()

	category := &model.Category{Name: "Elektronik"}
	require.NoError(t, ctx.DB.Create(category).Error)

	supplier := &model.Supplier{
		ID:          "SUP00000001",
		Name:        "PT Maju Jaya",
		ContactInfo: "sales@majujaya.example",
		Address:     "Jl. Gatot Subroto 12",
	}
	require.NoError(t, ctx.DB.Create(supplier).Error)

	return category, supplier
}
