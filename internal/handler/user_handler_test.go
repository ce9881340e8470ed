package handler_test

import (
	"net/http"
	"testing"

	"go-faktur-api/internal/model"
	"go-faktur-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersHidesPasswordHash(t *testing.T) {
	ctx := setupTestContext(t)

	resp := performRequest(t, ctx.App, http.MethodGet, "/api/users", nil, ctx.AdminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []map[string]interface{}
	decodeBody(t, resp, &users)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.NotContains(t, user, "password")
	}
}

func TestUpdateUserRole(t *testing.T) {
	ctx := setupTestContext(t)

	resp := performRequest(t, ctx.App, http.MethodPut, "/api/users/"+ctx.Staff.ID.String()+"/role",
		service.UpdateRoleRequest{Role: model.RoleAdmin}, ctx.AdminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		User model.UserResponse `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, model.RoleAdmin, body.User.Role)

	// Unknown role value is rejected before any database call
	resp = performRequest(t, ctx.App, http.MethodPut, "/api/users/"+ctx.Staff.ID.String()+"/role",
		service.UpdateRoleRequest{Role: "superuser"}, ctx.AdminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserRoutesAdminOnly(t *testing.T) {
	ctx := setupTestContext(t)

	resp := performRequest(t, ctx.App, http.MethodGet, "/api/users", nil, ctx.StaffToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
