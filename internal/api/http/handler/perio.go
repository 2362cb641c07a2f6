package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/service/perio"
)

type PerioHandler struct {
	svc perio.Service
}

func NewPerioHandler(svc perio.Service) *PerioHandler {
	return &PerioHandler{svc: svc}
}

func mapPerioError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, perio.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, perio.ErrNoReadings),
		errors.Is(err, perio.ErrInvalidDepth):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /perio
func (h *PerioHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
	}
	_ = c.Bind().Query(&q)

	exams, err := h.svc.List(c.Context(), q.PatientID)
	if err != nil {
		return mapPerioError(c, err)
	}
	return ok(c, exams)
}

// POST /perio
func (h *PerioHandler) RecordExam(c fiber.Ctx) error {
	var body struct {
		PatientID string `json:"patient_id"`
		Teeth     []struct {
			Tooth int  `json:"tooth"`
			PD    int  `json:"pd"`
			BOP   bool `json:"bop"`
		} `json:"teeth"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := perio.ExamRequest{PatientID: body.PatientID}
	for _, t := range body.Teeth {
		req.Teeth = append(req.Teeth, perio.ToothReading{Tooth: t.Tooth, PD: t.PD, BOP: t.BOP})
	}

	exam, err := h.svc.RecordExam(c.Context(), req)
	if err != nil {
		return mapPerioError(c, err)
	}
	return created(c, exam)
}
