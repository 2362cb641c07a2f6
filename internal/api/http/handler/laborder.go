package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/service/laborder"
)

type LabOrderHandler struct {
	svc laborder.Service
}

func NewLabOrderHandler(svc laborder.Service) *LabOrderHandler {
	return &LabOrderHandler{svc: svc}
}

func mapLabOrderError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, laborder.ErrNotFound),
		errors.Is(err, laborder.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, laborder.ErrItemRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /lab-orders
func (h *LabOrderHandler) List(c fiber.Ctx) error {
	orders, err := h.svc.List(c.Context())
	if err != nil {
		return mapLabOrderError(c, err)
	}
	return ok(c, orders)
}

// POST /lab-orders
func (h *LabOrderHandler) Place(c fiber.Ctx) error {
	var body struct {
		PatientID string `json:"patient_id"`
		Item      string `json:"item"`
		Lab       string `json:"lab"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	order, err := h.svc.Place(c.Context(), laborder.PlaceRequest{
		PatientID: body.PatientID,
		Item:      body.Item,
		Lab:       body.Lab,
	})
	if err != nil {
		return mapLabOrderError(c, err)
	}
	return created(c, order)
}

// POST /lab-orders/:id/ship
func (h *LabOrderHandler) Ship(c fiber.Ctx) error {
	if err := h.svc.Ship(c.Context(), c.Params("id")); err != nil {
		return mapLabOrderError(c, err)
	}
	return noContent(c)
}
