package handler_test

import (
	"net/http"
	"testing"

	"go-faktur-api/internal/model"
	"go-faktur-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := setupTestContext(t)

	req := service.RegisterRequest{
		Username: "newuser",
		Email:    "newuser@example.com",
		Password: "password123",
	}

	resp := performRequest(t, ctx.App, http.MethodPost, "/api/auth/register", req, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		User model.UserResponse `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "newuser@example.com", body.User.Email)
	// Role defaults to staff when omitted
	assert.Equal(t, model.RoleStaff, body.User.Role)

	// Duplicate email
	resp = performRequest(t, ctx.App, http.MethodPost, "/api/auth/register", req, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Missing required fields
	resp = performRequest(t, ctx.App, http.MethodPost, "/api/auth/register",
		service.RegisterRequest{Email: "incomplete@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginAndProtectedCall(t *testing.T) {
	ctx := setupTestContext(t)

	resp := performRequest(t, ctx.App, http.MethodPost, "/api/auth/login",
		service.LoginRequest{Email: "admin@example.com", Password: "password123"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)

	// The issued token opens a protected route
	resp = performRequest(t, ctx.App, http.MethodGet, "/api/categories", nil, body.Token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The same call with no token is rejected
	resp = performRequest(t, ctx.App, http.MethodGet, "/api/categories", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// A token with a disallowed role is forbidden
	resp = performRequest(t, ctx.App, http.MethodGet, "/api/categories", nil, ctx.StaffToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLoginFailures(t *testing.T) {
	ctx := setupTestContext(t)

	// Wrong password
	resp := performRequest(t, ctx.App, http.MethodPost, "/api/auth/login",
		service.LoginRequest{Email: "admin@example.com", Password: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Unknown account
	resp = performRequest(t, ctx.App, http.MethodPost, "/api/auth/login",
		service.LoginRequest{Email: "nobody@example.com", Password: "password123"}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
