package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/api/http/handler"
)

func (r *Router) registerClinicalRoutes(
	api fiber.Router,
	rh *handler.RecordHandler,
	peh *handler.PerioHandler,
	ih *handler.ImagingHandler,
) {
	records := api.Group("/records")
	records.Get("/", rh.List)
	records.Post("/", rh.Create)
	records.Patch("/:id", rh.Update)

	perio := api.Group("/perio")
	perio.Get("/", peh.List)
	perio.Post("/", peh.RecordExam)

	images := api.Group("/images")
	images.Get("/", ih.List)
	images.Post("/", ih.Capture)
}
