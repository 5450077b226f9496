package repositories

import (
	"context"

	"sproutly/domain/models"
)

type PlantRepository interface {
	Create(ctx context.Context, plant *models.Plant) error
	GetByID(ctx context.Context, id uint) (*models.Plant, error)
	GetByUserID(ctx context.Context, userID uint) ([]*models.Plant, error)
	// GetCurrentByUserID returns the user's first non-completed plant, or
	// (nil, nil) when every plant is completed.
	GetCurrentByUserID(ctx context.Context, userID uint) (*models.Plant, error)
	Update(ctx context.Context, id uint, upd *models.PlantUpdate) (*models.Plant, error)
}
