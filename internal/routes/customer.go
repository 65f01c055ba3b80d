package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crm-portal/crm_portal/internal/customer"
)

// RegisterCustomerRoutes wires the customer lookup endpoint behind bearer auth.
func RegisterCustomerRoutes(r fiber.Router, h *customer.Handler, bearer fiber.Handler) {
	group := r.Group("/customer", bearer)
	group.Get("/:customerId", h.Get)
}
