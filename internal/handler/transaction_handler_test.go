package handler_test

import (
	"net/http"
	"testing"

	"go-faktur-api/internal/model"
	"go-faktur-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTransaction(t *testing.T, ctx *testContext) *model.Transaction {
	t.Helper()

	resp := performRequest(t, ctx.App, http.MethodPost, "/api/transaksi", service.CreateTransactionRequest{
		UserID:      ctx.Admin.ID,
		Type:        "purchase",
		Description: "restock gudang",
	}, ctx.AdminToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Transaction model.Transaction `json:"transaction"`
	}
	decodeBody(t, resp, &body)
	return &body.Transaction
}

func TestCreateTransactionAssignsSequentialIDs(t *testing.T) {
	ctx := setupTestContext(t)

	first := createTransaction(t, ctx)
	assert.Equal(t, "TRX00000001", first.ID)

	second := createTransaction(t, ctx)
	assert.Equal(t, "TRX00000002", second.ID)
}

func TestCreateTransactionValidation(t *testing.T) {
	ctx := setupTestContext(t)

	// Missing description
	resp := performRequest(t, ctx.App, http.MethodPost, "/api/transaksi", service.CreateTransactionRequest{
		UserID: ctx.Admin.ID,
		Type:   "purchase",
	}, ctx.AdminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown account reference
	resp = performRequest(t, ctx.App, http.MethodPost, "/api/transaksi", service.CreateTransactionRequest{
		UserID:      uuid.New(),
		Type:        "purchase",
		Description: "restock gudang",
	}, ctx.AdminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTransactionUpdateAndDelete(t *testing.T) {
	ctx := setupTestContext(t)
	trx := createTransaction(t, ctx)

	resp := performRequest(t, ctx.App, http.MethodPut, "/api/transaksi/"+trx.ID, service.UpdateTransactionRequest{
		UserID: ctx.Staff.ID,
		Type:   "sale",
	}, ctx.AdminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Transaction model.Transaction `json:"transaction"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "sale", body.Transaction.Type)
	assert.Equal(t, ctx.Staff.ID, body.Transaction.UserID)
	// Description is immutable on update
	assert.Equal(t, "restock gudang", body.Transaction.Description)

	resp = performRequest(t, ctx.App, http.MethodDelete, "/api/transaksi/"+trx.ID, nil, ctx.AdminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = performRequest(t, ctx.App, http.MethodGet, "/api/transaksi/"+trx.ID, nil, ctx.AdminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateTransactionItemChecksReferences(t *testing.T) {
	ctx := setupTestContext(t)
	category, supplier := seedCatalog(t, ctx)

	product := &model.Product{
		ProductCode: "PRD-001",
		Name:        "Kipas Angin",
		Price:       150000,
		Stock:       10,
		CategoryID:  category.ID,
		SupplierID:  supplier.ID,
	}
	require.NoError(t, ctx.DB.Create(product).Error)

	// Nonexistent transaction reference: 404 and no insert
	resp := performRequest(t, ctx.App, http.MethodPost, "/api/detail_transaksi", service.TransactionItemRequest{
		TransactionID: "TRX99999999",
		ProductID:     product.ID,
		Quantity:      2,
		Price:         150000,
	}, ctx.AdminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var count int64
	require.NoError(t, ctx.DB.Model(&model.TransactionItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	trx := createTransaction(t, ctx)

	// Nonexistent product reference
	resp = performRequest(t, ctx.App, http.MethodPost, "/api/detail_transaksi", service.TransactionItemRequest{
		TransactionID: trx.ID,
		ProductID:     uuid.New(),
		Quantity:      2,
		Price:         150000,
	}, ctx.AdminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Valid references succeed
	resp = performRequest(t, ctx.App, http.MethodPost, "/api/detail_transaksi", service.TransactionItemRequest{
		TransactionID: trx.ID,
		ProductID:     product.ID,
		Quantity:      2,
		Price:         150000,
	}, ctx.AdminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateTransactionItemQuantityAndPriceRules(t *testing.T) {
	ctx := setupTestContext(t)
	category, supplier := seedCatalog(t, ctx)

	product := &model.Product{
		ProductCode: "PRD-001",
		Name:        "Kipas Angin",
		CategoryID:  category.ID,
		SupplierID:  supplier.ID,
	}
	require.NoError(t, ctx.DB.Create(product).Error)
	trx := createTransaction(t, ctx)

	// Quantity must be > 0
	resp := performRequest(t, ctx.App, http.MethodPost, "/api/detail_transaksi", service.TransactionItemRequest{
		TransactionID: trx.ID,
		ProductID:     product.ID,
		Quantity:      0,
		Price:         150000,
	}, ctx.AdminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Price must be >= 0
	resp = performRequest(t, ctx.App, http.MethodPost, "/api/detail_transaksi", service.TransactionItemRequest{
		TransactionID: trx.ID,
		ProductID:     product.ID,
		Quantity:      1,
		Price:         -1,
	}, ctx.AdminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Zero price is allowed
	resp = performRequest(t, ctx.App, http.MethodPost, "/api/detail_transaksi", service.TransactionItemRequest{
		TransactionID: trx.ID,
		ProductID:     product.ID,
		Quantity:      1,
		Price:         0,
	}, ctx.AdminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
