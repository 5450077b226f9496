package serviceimpl

import (
	"context"
	"errors"

	"sproutly/domain/dto"
	"sproutly/domain/models"
	"sproutly/domain/repositories"
	"sproutly/domain/services"
	"sproutly/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*models.Task, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.WarnContext(ctx, "User not found for task creation", "user_id", userID)
		return nil, errors.New("user not found")
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Points:      req.Points,
		UserID:      userID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID uint) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

func (s *TaskServiceImpl) GetUserTasks(ctx context.Context, userID uint) ([]*models.Task, error) {
	tasks, err := s.taskRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.Update(ctx, taskID, req.ToTaskUpdate())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}
	if task == nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID)
		return nil, nil
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID uint) (bool, error) {
	deleted, err := s.taskRepo.Delete(ctx, taskID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return false, err
	}
	if deleted {
		logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	}
	return deleted, nil
}
