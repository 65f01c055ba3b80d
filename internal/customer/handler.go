package customer

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the customer lookup endpoint. Authentication happens in the
// bearer-auth middleware before the request reaches this handler.
type Handler struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewHandler constructs a customer handler.
func NewHandler(gateway Gateway, logger *slog.Logger) *Handler {
	return &Handler{gateway: gateway, logger: logger}
}

// Get looks up a single customer record by identifier and translates gateway
// outcomes into the client-facing contract. Upstream diagnostics never appear
// in the response body.
func (h *Handler) Get(c *fiber.Ctx) error {
	customerID := strings.TrimSpace(c.Params("customerId"))
	if customerID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Customer ID is required"})
	}

	token, _ := c.Locals("bearer_token").(string)

	info, err := h.gateway.Fetch(c.UserContext(), customerID, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Customer not found"})
		}
		h.logger.Error("customer lookup failed",
			slog.String("customer_id", customerID),
			slog.Any("error", err),
		)
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"message": "Unable to retrieve customer information"})
	}

	return c.Status(http.StatusOK).JSON(info)
}
