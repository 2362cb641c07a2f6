package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/flttx/medi-manage-platform-sub000/internal/api/http/handler"
)

func (r *Router) registerBillingRoutes(api fiber.Router, bh *handler.BillingHandler) {
	invoices := api.Group("/invoices")

	invoices.Get("/", bh.List)
	invoices.Post("/", bh.Create)
	invoices.Post("/:id/pay", bh.MarkPaid)
}
