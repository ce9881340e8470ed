package handler

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

// GET /api/suppliers
func (h *SupplierHandler) GetAll(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(suppliers)
}

// GET /api/suppliers/:id
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	supplier, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(supplier)
}

// POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	if err := h.service.Create(&supplier); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "supplier created", "supplier": supplier})
}

// PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	updated, err := h.service.Update(c.Params("id"), &supplier)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "supplier updated", "supplier": updated})
}

// DELETE /api/suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "supplier deleted"})
}
