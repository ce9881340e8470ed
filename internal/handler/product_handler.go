package handler

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GET /api/product
func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	products, err := h.service.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// GET /api/product/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// GET /api/product/code/:code
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	product, err := h.service.GetByCode(c.Params("code"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// GET /api/product/category/:id
func (h *ProductHandler) GetByCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	products, err := h.service.GetByCategory(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// GET /api/product/supplier/:id
func (h *ProductHandler) GetBySupplier(c *fiber.Ctx) error {
	products, err := h.service.GetBySupplier(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// POST /api/product
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	if err := h.service.Create(&product); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "product created", "product": product})
}

// PUT /api/product/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	updated, err := h.service.Update(id, &product)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "product updated", "product": updated})
}

// DELETE /api/product/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}
