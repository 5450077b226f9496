package services

import (
	"context"

	"sproutly/domain/dto"
	"sproutly/domain/models"
)

type ChatService interface {
	CreateChat(ctx context.Context, userID uint, req *dto.CreateChatRequest) (*models.Chat, error)
	GetUserChats(ctx context.Context, userID uint) ([]*models.Chat, error)
}
