package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sproutly/domain/dto"
	"sproutly/domain/services"
	"sproutly/pkg/logger"
	"sproutly/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task creation failed", "user_id", user.ID, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load task", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	if task == nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetUserTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	tasks, err := h.taskService.GetUserTasks(ctx, user.ID)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.UpdateTask(ctx, taskID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Task update failed", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	if task == nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	deleted, err := h.taskService.DeleteTask(ctx, taskID)
	if err != nil {
		logger.ErrorContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	if !deleted {
		return utils.NotFoundResponse(c, "Task not found")
	}

	return utils.NoContentResponse(c)
}
