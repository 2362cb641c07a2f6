package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/api/http/handler"
)

func (r *Router) registerLabOrderRoutes(api fiber.Router, lh *handler.LabOrderHandler) {
	orders := api.Group("/lab-orders")

	orders.Get("/", lh.List)
	orders.Post("/", lh.Place)
	orders.Post("/:id/ship", lh.Ship)
}
