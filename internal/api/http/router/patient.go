package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(api fiber.Router, ph *handler.PatientHandler) {
	patients := api.Group("/patients")

	patients.Get("/", ph.List)
	patients.Post("/", ph.Create)
	patients.Get("/:id", ph.Get)
	patients.Patch("/:id/status", ph.SetStatus)
}
