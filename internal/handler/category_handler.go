package handler

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// GET /api/categories
func (h *CategoryHandler) GetAll(c *fiber.Ctx) error {
	categories, err := h.service.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(categories)
}

// GET /api/categories/:id
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	category, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(category)
}

// POST /api/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	if err := h.service.Create(&category); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "category created", "category": category})
}

// PUT /api/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	updated, err := h.service.Update(id, &category)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "category updated", "category": updated})
}

// DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "category deleted"})
}
