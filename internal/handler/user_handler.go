package handler

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// GET /api/users
func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.service.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// GET /api/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	user, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// PUT /api/users/:id/role
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req service.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	user, err := h.service.UpdateRole(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "role updated", "user": user})
}
