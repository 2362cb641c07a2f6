package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		Date      string `query:"date"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{}
	if q.PatientID != "" {
		req.PatientID = &q.PatientID
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.Date != "" {
		req.Date = &q.Date
	}

	appts, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appts)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	var body struct {
		PatientID string `json:"patient_id"`
		Type      string `json:"type"`
		Time      string `json:"time"`
		Date      string `json:"date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Book(c.Context(), appointment.BookRequest{
		PatientID: body.PatientID,
		Type:      body.Type,
		Time:      body.Time,
		Date:      body.Date,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, appt)
}

// PATCH /appointments/:id/status
func (h *AppointmentHandler) SetStatus(c fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SetStatus(c.Context(), c.Params("id"), body.Status); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// POST /appointments/:id/start
func (h *AppointmentHandler) Start(c fiber.Ctx) error {
	if err := h.svc.StartVisit(c.Context(), c.Params("id")); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

// POST /appointments/:id/finish
func (h *AppointmentHandler) Finish(c fiber.Ctx) error {
	if err := h.svc.FinishVisit(c.Context(), c.Params("id")); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}
