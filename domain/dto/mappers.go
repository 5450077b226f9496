package dto

import "sproutly/domain/models"

func UserToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

func TaskToTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Points:      task.Points,
		Completed:   task.Completed,
		UserID:      task.UserID,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, TaskToTaskResponse(task))
	}
	return responses
}

func PlantToPlantResponse(plant *models.Plant) PlantResponse {
	return PlantResponse{
		ID:                plant.ID,
		Name:              plant.Name,
		Type:              plant.Type,
		Stage:             plant.Stage,
		Points:            plant.Points,
		PointsToNextStage: plant.PointsToNextStage,
		MaxStage:          plant.MaxStage,
		Completed:         plant.Completed,
		StartDate:         plant.StartDate,
		UserID:            plant.UserID,
	}
}

func PlantsToPlantResponses(plants []*models.Plant) []PlantResponse {
	responses := make([]PlantResponse, 0, len(plants))
	for _, plant := range plants {
		responses = append(responses, PlantToPlantResponse(plant))
	}
	return responses
}

func ChatToChatResponse(chat *models.Chat) ChatResponse {
	return ChatResponse{
		ID:        chat.ID,
		Message:   chat.Message,
		IsUser:    chat.IsUser,
		Timestamp: chat.Timestamp,
		UserID:    chat.UserID,
	}
}

func ChatsToChatResponses(chats []*models.Chat) []ChatResponse {
	responses := make([]ChatResponse, 0, len(chats))
	for _, chat := range chats {
		responses = append(responses, ChatToChatResponse(chat))
	}
	return responses
}

func (r *UpdateTaskRequest) ToTaskUpdate() *models.TaskUpdate {
	return &models.TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Points:      r.Points,
		Completed:   r.Completed,
	}
}

func (r *UpdatePlantRequest) ToPlantUpdate() *models.PlantUpdate {
	return &models.PlantUpdate{
		Name:              r.Name,
		Type:              r.Type,
		Stage:             r.Stage,
		Points:            r.Points,
		PointsToNextStage: r.PointsToNextStage,
		MaxStage:          r.MaxStage,
		Completed:         r.Completed,
	}
}
