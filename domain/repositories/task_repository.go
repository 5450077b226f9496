package repositories

import (
	"context"

	"sproutly/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	GetByUserID(ctx context.Context, userID uint) ([]*models.Task, error)
	// Update writes the non-nil fields of upd and returns the updated row,
	// or (nil, nil) when no row matched.
	Update(ctx context.Context, id uint, upd *models.TaskUpdate) (*models.Task, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id uint) (bool, error)
}
