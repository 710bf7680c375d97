package routes

import (
	site_handlers "vedang.dev/handlers/site"
	"vedang.dev/pkg/mailer"
	"vedang.dev/pkg/storage"

	"github.com/gofiber/fiber/v2"
)

// registerSiteRoutes wires the public pages. The handler is returned so the
// panel routes can hook its cache invalidation.
func registerSiteRoutes(app *fiber.App, blobs storage.Store, notifier mailer.Notifier) *site_handlers.SiteHandler {
	handler := site_handlers.NewSiteHandler(blobs, notifier)

	app.Get("/", handler.Home)
	app.Get("/about", handler.About)
	app.Get("/projects", handler.Projects)
	app.Get("/projects/:id", handler.ProjectDetail)
	app.Get("/contact", handler.ShowContact)
	app.Post("/contact", handler.SubmitContact)
	app.Get("/resume/download", handler.DownloadResume)
	return handler
}
