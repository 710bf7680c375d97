package routes

import (
	panel_handlers "vedang.dev/handlers/panel"

	"github.com/gofiber/fiber/v2"
)

// registerAuthRoutes wires the owner login under /auth.
func registerAuthRoutes(app *fiber.App) {
	handler := panel_handlers.NewAuthHandler()

	authGroup := app.Group("/auth")
	authGroup.Get("/login", handler.ShowLogin)
	authGroup.Post("/login", handler.Login)
	authGroup.Post("/logout", handler.Logout)
	authGroup.Get("/logout", handler.Logout)
}
