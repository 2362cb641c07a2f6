package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/api/http/handler"
)

func (r *Router) registerChatRoutes(api fiber.Router, ch *handler.ChatHandler) {
	messages := api.Group("/messages")

	messages.Get("/", ch.History)
	messages.Post("/", ch.Send)
}
