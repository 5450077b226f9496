package services

import (
	"context"

	"sproutly/domain/dto"
	"sproutly/domain/models"
)

// TaskService exposes task CRUD. Lookups and updates return (nil, nil) when
// the task does not exist; DeleteTask reports whether a row was removed.
type TaskService interface {
	CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, taskID uint) (*models.Task, error)
	GetUserTasks(ctx context.Context, userID uint) ([]*models.Task, error)
	UpdateTask(ctx context.Context, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uint) (bool, error)
}
