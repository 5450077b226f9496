package repositories

import (
	"context"

	"sproutly/domain/models"
)

// UserRepository persists identity records. Lookups return (nil, nil) when
// no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
