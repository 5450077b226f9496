package dto

import "time"

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
	Points      int        `json:"points" validate:"omitempty,min=0,max=1000"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
	Points      *int       `json:"points" validate:"omitempty,min=0,max=1000"`
	Completed   *bool      `json:"completed"`
}

type TaskResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Points      int        `json:"points"`
	Completed   bool       `json:"completed"`
	UserID      uint       `json:"userId"`
}
