package handler_test

import (
	"net/http"
	"testing"

	"go-faktur-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryDuplicateName(t *testing.T) {
	ctx := setupTestContext(t)

	resp := performRequest(t, ctx.App, http.MethodPost, "/api/categories",
		model.Category{Name: "Minuman"}, ctx.AdminToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same name again conflicts and must not insert a second row
	resp = performRequest(t, ctx.App, http.MethodPost, "/api/categories",
		model.Category{Name: "Minuman"}, ctx.AdminToken)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, ctx.DB.Model(&model.Category{}).Where("name = ?", "Minuman").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateCategoryRenameConflict(t *testing.T) {
	ctx := setupTestContext(t)

	a := &model.Category{Name: "Makanan"}
	b := &model.Category{Name: "Minuman"}
	require.NoError(t, ctx.DB.Create(a).Error)
	require.NoError(t, ctx.DB.Create(b).Error)

	// Renaming b onto a's name conflicts
	resp := performRequest(t, ctx.App, http.MethodPut, "/api/categories/"+b.ID.String(),
		model.Category{Name: "Makanan"}, ctx.AdminToken)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Renaming b to a fresh name succeeds
	resp = performRequest(t, ctx.App, http.MethodPut, "/api/categories/"+b.ID.String(),
		model.Category{Name: "Snack"}, ctx.AdminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCategoryNotFound(t *testing.T) {
	ctx := setupTestContext(t)

	resp := performRequest(t, ctx.App, http.MethodGet,
		"/api/categories/00000000-0000-0000-0000-000000000001", nil, ctx.AdminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = performRequest(t, ctx.App, http.MethodDelete,
		"/api/categories/00000000-0000-0000-0000-000000000001", nil, ctx.AdminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCategoryMissingName(t *testing.T) {
	ctx := setupTestContext(t)

	resp := performRequest(t, ctx.App, http.MethodPost, "/api/categories",
		model.Category{}, ctx.AdminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
