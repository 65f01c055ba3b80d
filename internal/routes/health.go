package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterHealthRoutes adds a liveness style endpoint. The CRM backend is not
// probed here; its reachability is reported per request by the gateway.
func RegisterHealthRoutes(app *fiber.App, d Deps) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		redisStatus := "ok"

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if d.Cache != nil {
			if err := d.Cache.Ping(ctx).Err(); err != nil {
				redisStatus = err.Error()
			}
		} else {
			redisStatus = "not configured"
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":    "ok",
			"redis":     redisStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
}
