package handler

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles account creation
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "registration successful", "user": user})
}

// Login handles credential verification and token issuance
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "login successful", "token": resp.Token, "user": resp.User})
}
