package postgres

import (
	"context"

	"gorm.io/gorm"

	"sproutly/domain/models"
	"sproutly/domain/repositories"
)

type ChatRepositoryImpl struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) repositories.ChatRepository {
	return &ChatRepositoryImpl{db: db}
}

func (r *ChatRepositoryImpl) Create(ctx context.Context, chat *models.Chat) error {
	return r.db.WithContext(ctx).Create(chat).Error
}

func (r *ChatRepositoryImpl) GetByUserID(ctx context.Context, userID uint) ([]*models.Chat, error) {
	var chats []*models.Chat
	err := r.db.WithContext(ctx).Where(`"userId" = ?`, userID).Order("timestamp ASC").Find(&chats).Error
	return chats, err
}
