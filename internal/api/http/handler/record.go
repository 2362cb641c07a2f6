package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/service/record"
)

type RecordHandler struct {
	svc record.Service
}

func NewRecordHandler(svc record.Service) *RecordHandler {
	return &RecordHandler{svc: svc}
}

func mapRecordError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, record.ErrNotFound),
		errors.Is(err, record.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, record.ErrTypeRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /records
func (h *RecordHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
	}
	_ = c.Bind().Query(&q)

	recs, err := h.svc.List(c.Context(), q.PatientID)
	if err != nil {
		return mapRecordError(c, err)
	}
	return ok(c, recs)
}

// POST /records
func (h *RecordHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID     string `json:"patient_id"`
		SessionID     string `json:"session_id"`
		Type          string `json:"type"`
		Doctor        string `json:"doctor"`
		CC            string `json:"cc"`
		DX            string `json:"dx"`
		Plan          string `json:"plan"`
		AffectedTeeth []int  `json:"affected_teeth"`
		HasImages     bool   `json:"has_images"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.Create(c.Context(), record.CreateRequest{
		PatientID:     body.PatientID,
		SessionID:     body.SessionID,
		Type:          body.Type,
		Doctor:        body.Doctor,
		CC:            body.CC,
		DX:            body.DX,
		Plan:          body.Plan,
		AffectedTeeth: body.AffectedTeeth,
		HasImages:     body.HasImages,
	})
	if err != nil {
		return mapRecordError(c, err)
	}
	return created(c, rec)
}

// PATCH /records/:id
func (h *RecordHandler) Update(c fiber.Ctx) error {
	var body struct {
		CC            *string `json:"cc"`
		DX            *string `json:"dx"`
		Plan          *string `json:"plan"`
		AffectedTeeth *[]int  `json:"affected_teeth"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.Update(c.Context(), c.Params("id"), record.UpdateRequest{
		CC:            body.CC,
		DX:            body.DX,
		Plan:          body.Plan,
		AffectedTeeth: body.AffectedTeeth,
	})
	if err != nil {
		return mapRecordError(c, err)
	}
	return ok(c, rec)
}
