package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/service/billing"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
)

type BillingHandler struct {
	svc billing.Service
}

func NewBillingHandler(svc billing.Service) *BillingHandler {
	return &BillingHandler{svc: svc}
}

func mapBillingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, billing.ErrNotFound),
		errors.Is(err, billing.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, billing.ErrNoLineItems),
		errors.Is(err, billing.ErrNegativeAmount):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /invoices
func (h *BillingHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
	}
	_ = c.Bind().Query(&q)

	invoices, err := h.svc.List(c.Context(), q.PatientID)
	if err != nil {
		return mapBillingError(c, err)
	}
	return ok(c, invoices)
}

// POST /invoices
func (h *BillingHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID string `json:"patient_id"`
		Category  string `json:"category"`
		Paid      bool   `json:"paid"`
		Items     []struct {
			Label  string `json:"label"`
			Amount int64  `json:"amount"`
		} `json:"items"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := billing.CreateRequest{
		PatientID: body.PatientID,
		Category:  body.Category,
		Paid:      body.Paid,
	}
	for _, it := range body.Items {
		req.Items = append(req.Items, store.InvoiceLine{Label: it.Label, Amount: it.Amount})
	}

	inv, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapBillingError(c, err)
	}
	return created(c, inv)
}

// POST /invoices/:id/pay
func (h *BillingHandler) MarkPaid(c fiber.Ctx) error {
	if err := h.svc.MarkPaid(c.Context(), c.Params("id")); err != nil {
		return mapBillingError(c, err)
	}
	return noContent(c)
}
