package handler

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionItemHandler struct {
	service service.TransactionItemService
}

func NewTransactionItemHandler(s service.TransactionItemService) *TransactionItemHandler {
	return &TransactionItemHandler{service: s}
}

// GET /api/detail_transaksi
func (h *TransactionItemHandler) GetAll(c *fiber.Ctx) error {
	items, err := h.service.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// GET /api/detail_transaksi/:id
func (h *TransactionItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	item, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// POST /api/detail_transaksi
func (h *TransactionItemHandler) Create(c *fiber.Ctx) error {
	var req service.TransactionItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	item, err := h.service.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "transaction item created", "transaction_item": item})
}

// PUT /api/detail_transaksi/:id
func (h *TransactionItemHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req service.TransactionItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	item, err := h.service.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "transaction item updated", "transaction_item": item})
}

// DELETE /api/detail_transaksi/:id
func (h *TransactionItemHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "transaction item deleted"})
}
