package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/service-request-portal/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Tools  *handlers.ToolsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/tools", cfg.Tools.ListTools)
	app.Post("/tools/:name", cfg.Tools.CallTool)
}
