package handlers

import (
	"sproutly/domain/services"
)

// Services contains everything the handlers need.
type Services struct {
	UserService  services.UserService
	TaskService  services.TaskService
	PlantService services.PlantService
	ChatService  services.ChatService
}

type Handlers struct {
	UserHandler  *UserHandler
	TaskHandler  *TaskHandler
	PlantHandler *PlantHandler
	ChatHandler  *ChatHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		UserHandler:  NewUserHandler(services.UserService),
		TaskHandler:  NewTaskHandler(services.TaskService),
		PlantHandler: NewPlantHandler(services.PlantService),
		ChatHandler:  NewChatHandler(services.ChatService),
	}
}
