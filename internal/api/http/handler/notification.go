package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/notify"
)

type NotificationHandler struct {
	presenter *notify.Presenter
}

func NewNotificationHandler(p *notify.Presenter) *NotificationHandler {
	return &NotificationHandler{presenter: p}
}

// GET /notifications
func (h *NotificationHandler) List(c fiber.Ctx) error {
	return ok(c, h.presenter.Entries())
}

// GET /notifications/banner
func (h *NotificationHandler) Banner(c fiber.Ctx) error {
	banner, active := h.presenter.Banners().Current()
	if !active {
		return noContent(c)
	}
	return ok(c, banner)
}

// DELETE /notifications/banner
func (h *NotificationHandler) DismissBanner(c fiber.Ctx) error {
	h.presenter.Banners().Dismiss()
	return noContent(c)
}
