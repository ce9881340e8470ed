package handler

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// GET /api/transaksi
func (h *TransactionHandler) GetAll(c *fiber.Ctx) error {
	transactions, err := h.service.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(transactions)
}

// GET /api/transaksi/:id
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	transaction, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(transaction)
}

// POST /api/transaksi
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req service.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	transaction, err := h.service.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "transaction created", "transaction": transaction})
}

// PUT /api/transaksi/:id
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var req service.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.New(apperr.Validation, "invalid JSON"))
	}

	transaction, err := h.service.Update(c.Params("id"), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "transaction updated", "transaction": transaction})
}

// DELETE /api/transaksi/:id
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "transaction deleted"})
}
