package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-faktur-api/internal/middleware"
	"go-faktur-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(tokens *jwt.Service) *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(200) }

	app.Get("/admin", middleware.RequireAuth(tokens), middleware.RequireRoles("admin"), ok)
	app.Get("/any", middleware.RequireAuth(tokens), middleware.RequireRoles("admin", "staff"), ok)
	// Misconfigured route: authorization without authentication
	app.Get("/no-auth", middleware.RequireRoles("admin"), ok)

	return app
}

func doRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRequireAuthMissingToken(t *testing.T) {
	app := testApp(jwt.NewService("secret", time.Hour))

	resp := doRequest(t, app, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	app := testApp(jwt.NewService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	app := testApp(jwt.NewService("secret", time.Hour))

	resp := doRequest(t, app, "/admin", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	expired := jwt.NewService("secret", -time.Minute)
	token, err := expired.Generate(uuid.New(), "admin")
	require.NoError(t, err)

	app := testApp(jwt.NewService("secret", time.Hour))
	resp := doRequest(t, app, "/admin", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	tokens := jwt.NewService("secret", time.Hour)
	app := testApp(tokens)

	adminToken, err := tokens.Generate(uuid.New(), "admin")
	require.NoError(t, err)
	staffToken, err := tokens.Generate(uuid.New(), "staff")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(t, app, "/admin", adminToken).StatusCode)
	assert.Equal(t, http.StatusOK, doRequest(t, app, "/any", staffToken).StatusCode)
}

func TestRequireRolesRejectsDisallowedRole(t *testing.T) {
	tokens := jwt.NewService("secret", time.Hour)
	app := testApp(tokens)

	staffToken, err := tokens.Generate(uuid.New(), "staff")
	require.NoError(t, err)

	resp := doRequest(t, app, "/admin", staffToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRolesWithoutIdentity(t *testing.T) {
	// A route wired without RequireAuth must reject with 401, not 403
	app := testApp(jwt.NewService("secret", time.Hour))

	resp := doRequest(t, app, "/no-auth", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
