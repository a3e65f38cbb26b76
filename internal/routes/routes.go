package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/mozhii/platform/internal/config"
	"github.com/mozhii/platform/internal/handlers"
	"github.com/mozhii/platform/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	publicHandler *handlers.PublicHandler,
	adminHandler *handlers.AdminHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Contributor endpoints — public
	api.Post("/submit", publicHandler.Submit)
	api.Post("/feedback", publicHandler.Feedback)
	api.Get("/public-stats", publicHandler.PublicStats)

	// Login gets a stricter limit: 10 req/min per IP
	api.Post("/admin/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)

	// Review panel (JWT required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg))
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/submissions", adminHandler.ListSubmissions)
	admin.Get("/submission/:id", adminHandler.SubmissionDetail)
	admin.Post("/submission/:id/approve", adminHandler.Approve)
	admin.Post("/submission/:id/reject", adminHandler.Reject)
	admin.Get("/audit-log", adminHandler.AuditLog)
	admin.Get("/feedbacks", adminHandler.Feedbacks)

	admin.Get("/hf-settings", settingsHandler.GetHFSettings)
	admin.Put("/hf-settings", settingsHandler.UpdateHFSettings)
	admin.Post("/hf-test", settingsHandler.TestHF)
	admin.Get("/storage-info", settingsHandler.StorageInfo)
	admin.Put("/stats-override", settingsHandler.UpdateStatsOverride)
}
