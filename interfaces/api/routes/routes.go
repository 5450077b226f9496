package routes

import (
	"github.com/gofiber/fiber/v2"

	"sproutly/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h, jwtSecret)
	SetupTaskRoutes(api, h, jwtSecret)
	SetupPlantRoutes(api, h, jwtSecret)
	SetupChatRoutes(api, h, jwtSecret)
}
