package routes

import (
	"github.com/gofiber/fiber/v2"

	"sproutly/interfaces/api/handlers"
	"sproutly/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	auth := api.Group("/auth")

	auth.Post("/register", h.UserHandler.Register)
	auth.Post("/login", h.UserHandler.Login)
	auth.Get("/me", middleware.Protected(jwtSecret), h.UserHandler.GetProfile)
}
