package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrNameRequired),
		errors.Is(err, patient.ErrInvalidPhone),
		errors.Is(err, patient.ErrInvalidStatus),
		errors.Is(err, patient.ErrInvalidRisk):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Status string `query:"status"`
		Risk   string `query:"risk"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListRequest{}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.Risk != "" {
		req.Risk = &q.Risk
	}

	patients, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, patients)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	p, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name   string `json:"name"`
		Age    int    `json:"age"`
		Phone  string `json:"phone"`
		Gender string `json:"gender"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Create(c.Context(), patient.CreateRequest{
		Name:   body.Name,
		Age:    body.Age,
		Phone:  body.Phone,
		Gender: body.Gender,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// PATCH /patients/:id/status
func (h *PatientHandler) SetStatus(c fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SetStatus(c.Context(), c.Params("id"), body.Status); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}
