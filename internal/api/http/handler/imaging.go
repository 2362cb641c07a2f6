package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/service/imaging"
)

type ImagingHandler struct {
	svc imaging.Service
}

func NewImagingHandler(svc imaging.Service) *ImagingHandler {
	return &ImagingHandler{svc: svc}
}

func mapImagingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, imaging.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, imaging.ErrInvalidMode):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /images
func (h *ImagingHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
	}
	_ = c.Bind().Query(&q)

	images, err := h.svc.List(c.Context(), q.PatientID)
	if err != nil {
		return mapImagingError(c, err)
	}
	return ok(c, images)
}

// POST /images
func (h *ImagingHandler) Capture(c fiber.Ctx) error {
	var body struct {
		PatientID string `json:"patient_id"`
		Type      string `json:"type"`
		URL       string `json:"url"`
		Note      string `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	img, err := h.svc.Capture(c.Context(), imaging.CaptureRequest{
		PatientID: body.PatientID,
		Type:      body.Type,
		URL:       body.URL,
		Note:      body.Note,
	})
	if err != nil {
		return mapImagingError(c, err)
	}
	return created(c, img)
}
