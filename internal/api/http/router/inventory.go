package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/api/http/handler"
)

func (r *Router) registerInventoryRoutes(api fiber.Router, ih *handler.InventoryHandler) {
	inv := api.Group("/inventory")

	inv.Get("/", ih.List)
	inv.Post("/", ih.Add)
	inv.Get("/alerts", ih.Alerts)
	inv.Post("/:id/use", ih.Use)
	inv.Post("/:id/restock", ih.Restock)
}
