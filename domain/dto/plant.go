package dto

import "time"

type CreatePlantRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=100"`
	Type              string `json:"type" validate:"required,min=1,max=50"`
	PointsToNextStage int    `json:"pointsToNextStage" validate:"required,min=1"`
	MaxStage          int    `json:"maxStage" validate:"required,min=1,max=20"`
}

type UpdatePlantRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=100"`
	Type              *string `json:"type" validate:"omitempty,min=1,max=50"`
	Stage             *int    `json:"stage" validate:"omitempty,min=1"`
	Points            *int    `json:"points" validate:"omitempty,min=0"`
	PointsToNextStage *int    `json:"pointsToNextStage" validate:"omitempty,min=1"`
	MaxStage          *int    `json:"maxStage" validate:"omitempty,min=1,max=20"`
	Completed         *bool   `json:"completed"`
}

type PlantResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Stage             int       `json:"stage"`
	Points            int       `json:"points"`
	PointsToNextStage int       `json:"pointsToNextStage"`
	MaxStage          int       `json:"maxStage"`
	Completed         bool      `json:"completed"`
	StartDate         time.Time `json:"startDate"`
	UserID            uint      `json:"userId"`
}
