package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/lead-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/lead-dashboard/internal/auth"
	"github.com/spec-kit/lead-dashboard/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Leads          *handlers.LeadsHandler
	Assessments    *handlers.AssessmentsHandler
	Countries      *handlers.CountriesHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
	// RequireLogin gates the admin endpoints behind a bearer token.
	RequireLogin bool
}

// BodyLimit leaves room for the form fields around a maximum-size resume.
const BodyLimit = handlers.MaxResumeBytes + 1<<20

// NewApp builds the fiber app with limits sized for the intake form.
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:   name,
		BodyLimit: BodyLimit,
	})
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	api := app.Group("/api")
	api.Get("/countries", cfg.Countries.List)
	api.Post("/assessments", cfg.Assessments.Submit)

	gate := cfg.AuthMiddleware.Optional(cfg.RequireLogin)
	api.Get("/assessments", gate, cfg.Assessments.List)
	api.Get("/leads", gate, cfg.Leads.List)
	api.Patch("/leads/:id", gate, cfg.Leads.Patch)
}
