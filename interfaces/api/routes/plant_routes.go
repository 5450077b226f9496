package routes

import (
	"github.com/gofiber/fiber/v2"

	"sproutly/interfaces/api/handlers"
	"sproutly/interfaces/api/middleware"
)

func SetupPlantRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	plants := api.Group("/plants")
	plants.Use(middleware.Protected(jwtSecret))
	plants.Post("/", h.PlantHandler.CreatePlant)
	plants.Get("/", h.PlantHandler.GetUserPlants)
	plants.Get("/current", h.PlantHandler.GetCurrentPlant)
	plants.Get("/:id", h.PlantHandler.GetPlant)
	plants.Patch("/:id", h.PlantHandler.UpdatePlant)
}
