package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/api/http/handler"
)

func (r *Router) registerPlanRoutes(api fiber.Router, ph *handler.PlanHandler) {
	plans := api.Group("/plans")

	plans.Get("/", ph.List)
	plans.Post("/", ph.Create)
	plans.Get("/:id", ph.Get)
	plans.Post("/:id/propose", ph.Propose)
	plans.Post("/:id/approve", ph.Approve)
	plans.Post("/:id/reject", ph.Reject)
	plans.Put("/:id/items/:iid/teeth", ph.SetItemTeeth)
}
