package routes

import (
	api_handlers "vedang.dev/handlers/api"
	"vedang.dev/pkg/storage"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes wires the JSON endpoints under /api.
func registerAPIRoutes(app *fiber.App, blobs storage.Store) {
	handler := api_handlers.NewAPIHandler(blobs)

	apiGroup := app.Group("/api")
	apiGroup.Get("/skills", handler.Skills)
	apiGroup.Get("/search-projects", handler.SearchProjects)
}
