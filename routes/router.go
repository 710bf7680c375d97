package routes

import (
	"vedang.dev/configs"
	"vedang.dev/pkg/mailer"
	"vedang.dev/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes registers the global middleware and all route groups.
func SetupRoutes(app *fiber.App, blobs storage.Store, notifier mailer.Notifier) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(initializeSession())

	siteHandler := registerSiteRoutes(app, blobs, notifier)
	registerAPIRoutes(app, blobs)
	registerAuthRoutes(app)
	registerPanelRoutes(app, blobs, notifier, siteHandler.InvalidateHomeCache)

	// Unmatched routes fall through here.
	app.Use(notFoundHandler)
}

// initializeSession puts the session store into locals so handlers and the
// flash helpers can reach it.
func initializeSession() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("text/html", "application/json")
	if accepts == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Page Not Found"}, "layouts/error_layout")
}
