package routes

import (
	"github.com/gofiber/fiber/v2"

	"sproutly/interfaces/api/handlers"
	"sproutly/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Protected(jwtSecret))
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.GetUserTasks)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Patch("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
