package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/service/plan"
)

type PlanHandler struct {
	svc plan.Service
}

func NewPlanHandler(svc plan.Service) *PlanHandler {
	return &PlanHandler{svc: svc}
}

func mapPlanError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, plan.ErrNotFound),
		errors.Is(err, plan.ErrItemNotFound),
		errors.Is(err, plan.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, plan.ErrTitleRequired),
		errors.Is(err, plan.ErrNoItems):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /plans
func (h *PlanHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
	}
	_ = c.Bind().Query(&q)

	plans, err := h.svc.List(c.Context(), q.PatientID)
	if err != nil {
		return mapPlanError(c, err)
	}
	return ok(c, plans)
}

// GET /plans/:id
func (h *PlanHandler) Get(c fiber.Ctx) error {
	p, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapPlanError(c, err)
	}
	return ok(c, p)
}

// POST /plans
func (h *PlanHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID string `json:"patient_id"`
		Title     string `json:"title"`
		Items     []struct {
			Name      string `json:"name"`
			UnitPrice int64  `json:"unit_price"`
			Teeth     []int  `json:"teeth"`
		} `json:"items"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := plan.CreateRequest{
		PatientID: body.PatientID,
		Title:     body.Title,
	}
	for _, it := range body.Items {
		req.Items = append(req.Items, plan.ItemRequest{
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Teeth:     it.Teeth,
		})
	}

	p, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapPlanError(c, err)
	}
	return created(c, p)
}

// POST /plans/:id/propose
func (h *PlanHandler) Propose(c fiber.Ctx) error {
	if err := h.svc.Propose(c.Context(), c.Params("id")); err != nil {
		return mapPlanError(c, err)
	}
	return noContent(c)
}

// POST /plans/:id/approve
func (h *PlanHandler) Approve(c fiber.Ctx) error {
	if err := h.svc.Approve(c.Context(), c.Params("id")); err != nil {
		return mapPlanError(c, err)
	}
	return noContent(c)
}

// POST /plans/:id/reject
func (h *PlanHandler) Reject(c fiber.Ctx) error {
	if err := h.svc.Reject(c.Context(), c.Params("id")); err != nil {
		return mapPlanError(c, err)
	}
	return noContent(c)
}

// PUT /plans/:id/items/:iid/teeth
func (h *PlanHandler) SetItemTeeth(c fiber.Ctx) error {
	var body struct {
		Teeth []int `json:"teeth"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.svc.SetItemTeeth(c.Context(), c.Params("id"), c.Params("iid"), body.Teeth)
	if err != nil {
		return mapPlanError(c, err)
	}
	return ok(c, item)
}
