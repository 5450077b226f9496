package services

import (
	"context"

	"sproutly/domain/dto"
	"sproutly/domain/models"
)

type PlantService interface {
	CreatePlant(ctx context.Context, userID uint, req *dto.CreatePlantRequest) (*models.Plant, error)
	GetPlant(ctx context.Context, plantID uint) (*models.Plant, error)
	GetUserPlants(ctx context.Context, userID uint) ([]*models.Plant, error)
	// GetCurrentPlant returns the user's in-progress plant, or (nil, nil)
	// when none exists.
	GetCurrentPlant(ctx context.Context, userID uint) (*models.Plant, error)
	UpdatePlant(ctx context.Context, plantID uint, req *dto.UpdatePlantRequest) (*models.Plant, error)
}
