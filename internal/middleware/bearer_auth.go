package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/crm-portal/crm_portal/internal/auth"
)

const bearerPrefix = "Bearer "

// BearerAuth requires an Authorization header of the exact form
// "Bearer <token>" and rejects the request before any handler runs when the
// header is missing, uses another scheme, or the verifier refuses the token.
// The raw token and the verified subject are stored in Locals for handlers
// that forward the token downstream.
func BearerAuth(verifier auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if strings.TrimSpace(header) == "" || !strings.HasPrefix(header, bearerPrefix) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "Authorization token is required"})
		}

		token := strings.TrimSpace(header[len(bearerPrefix):])
		subject, err := verifier.Verify(token)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		c.Locals("bearer_token", token)
		c.Locals("subject", subject.ID)
		return c.Next()
	}
}
