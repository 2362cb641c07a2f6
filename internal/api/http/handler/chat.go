package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/service/chat"
)

type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func mapChatError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, chat.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, chat.ErrEmptyMessage):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /messages
func (h *ChatHandler) History(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
	}
	_ = c.Bind().Query(&q)

	msgs, err := h.svc.History(c.Context(), q.PatientID)
	if err != nil {
		return mapChatError(c, err)
	}
	return ok(c, msgs)
}

// POST /messages
func (h *ChatHandler) Send(c fiber.Ctx) error {
	var body struct {
		PatientID string `json:"patient_id"`
		Sender    string `json:"sender"`
		Text      string `json:"text"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.Send(c.Context(), chat.SendRequest{
		PatientID: body.PatientID,
		Sender:    body.Sender,
		Text:      body.Text,
	})
	if err != nil {
		return mapChatError(c, err)
	}
	return created(c, msg)
}
