package repositories

import (
	"context"

	"sproutly/domain/models"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *models.Chat) error
	// GetByUserID returns the user's messages ordered by timestamp ascending.
	GetByUserID(ctx context.Context, userID uint) ([]*models.Chat, error)
}
