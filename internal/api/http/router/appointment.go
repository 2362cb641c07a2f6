package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(api fiber.Router, ah *handler.AppointmentHandler) {
	appts := api.Group("/appointments")

	appts.Get("/", ah.List)
	appts.Post("/", ah.Book)
	appts.Patch("/:id/status", ah.SetStatus)
	appts.Post("/:id/start", ah.Start)
	appts.Post("/:id/finish", ah.Finish)
}
