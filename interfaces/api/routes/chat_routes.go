package routes

import (
	"github.com/gofiber/fiber/v2"

	"sproutly/interfaces/api/handlers"
	"sproutly/interfaces/api/middleware"
)

func SetupChatRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	chats := api.Group("/chats")
	chats.Use(middleware.Protected(jwtSecret))
	chats.Post("/", h.ChatHandler.CreateChat)
	chats.Get("/", h.ChatHandler.GetUserChats)
}
