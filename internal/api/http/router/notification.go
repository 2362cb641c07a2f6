package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/api/http/handler"
)

func (r *Router) registerNotificationRoutes(api fiber.Router, nh *handler.NotificationHandler) {
	notifications := api.Group("/notifications")

	notifications.Get("/", nh.List)
	notifications.Get("/banner", nh.Banner)
	notifications.Delete("/banner", nh.DismissBanner)
}
