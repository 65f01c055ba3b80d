package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/crm-portal/crm_portal/internal/auth"
	"github.com/crm-portal/crm_portal/internal/config"
	"github.com/crm-portal/crm_portal/internal/customer"
	"github.com/crm-portal/crm_portal/internal/middleware"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger

	// Gateway and Verifier may be pre-set by tests; when nil the production
	// implementations are built from Cfg.
	Gateway  customer.Gateway
	Verifier auth.Verifier
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	authSvc := auth.NewStaticService(d.Cfg)
	authHandler := auth.NewHandler(authSvc)

	gateway := d.Gateway
	if gateway == nil {
		gateway = customer.NewCRMGateway(d.Cfg, d.Logger)
	}
	customerHandler := customer.NewHandler(gateway, d.Logger)

	verifier := d.Verifier
	if verifier == nil {
		verifier = auth.StaticVerifier{Token: d.Cfg.AcceptedToken}
	}

	// API routes
	api := app.Group("/api")

	// Public routes
	rateLimiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRatePerMin)
	RegisterAuthRoutes(api, authHandler, rateLimiter)

	// Protected routes
	bearer := middleware.BearerAuth(verifier)
	RegisterCustomerRoutes(api, customerHandler, bearer)

	return nil
}
