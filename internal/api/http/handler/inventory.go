package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/service/inventory"
)

type InventoryHandler struct {
	svc inventory.Service
}

func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func mapInventoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, inventory.ErrItemNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, inventory.ErrNameRequired),
		errors.Is(err, inventory.ErrInvalidQuantity):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /inventory
func (h *InventoryHandler) List(c fiber.Ctx) error {
	items, err := h.svc.List(c.Context())
	if err != nil {
		return mapInventoryError(c, err)
	}
	return ok(c, items)
}

// GET /inventory/alerts
func (h *InventoryHandler) Alerts(c fiber.Ctx) error {
	return ok(c, h.svc.Alerts(c.Context()))
}

// POST /inventory
func (h *InventoryHandler) Add(c fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Stock    int    `json:"stock"`
		MinStock int    `json:"min_stock"`
		Unit     string `json:"unit"`
		Batch    string `json:"batch"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.svc.Add(c.Context(), inventory.AddRequest{
		Name:     body.Name,
		Category: body.Category,
		Stock:    body.Stock,
		MinStock: body.MinStock,
		Unit:     body.Unit,
		Batch:    body.Batch,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}
	return created(c, item)
}

// POST /inventory/:id/use
func (h *InventoryHandler) Use(c fiber.Ctx) error {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Use(c.Context(), c.Params("id"), body.Quantity); err != nil {
		return mapInventoryError(c, err)
	}
	return noContent(c)
}

// POST /inventory/:id/restock
func (h *InventoryHandler) Restock(c fiber.Ctx) error {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Restock(c.Context(), c.Params("id"), body.Quantity); err != nil {
		return mapInventoryError(c, err)
	}
	return noContent(c)
}
