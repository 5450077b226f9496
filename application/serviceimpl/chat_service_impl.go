package serviceimpl

import (
	"context"
	"errors"
	"time"

	"sproutly/domain/dto"
	"sproutly/domain/models"
	"sproutly/domain/repositories"
	"sproutly/domain/services"
	"sproutly/pkg/logger"
)

type ChatServiceImpl struct {
	chatRepo repositories.ChatRepository
	userRepo repositories.UserRepository
}

func NewChatService(chatRepo repositories.ChatRepository, userRepo repositories.UserRepository) services.ChatService {
	return &ChatServiceImpl{
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

func (s *ChatServiceImpl) CreateChat(ctx context.Context, userID uint, req *dto.CreateChatRequest) (*models.Chat, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.WarnContext(ctx, "User not found for chat message", "user_id", userID)
		return nil, errors.New("user not found")
	}

	// The message timestamp is assigned here, not taken from the request.
	chat := &models.Chat{
		Message:   req.Message,
		IsUser:    req.IsUser,
		Timestamp: time.Now(),
		UserID:    userID,
	}

	if err := s.chatRepo.Create(ctx, chat); err != nil {
		logger.ErrorContext(ctx, "Failed to create chat message", "user_id", userID, "error", err)
		return nil, err
	}

	return chat, nil
}

func (s *ChatServiceImpl) GetUserChats(ctx context.Context, userID uint) ([]*models.Chat, error) {
	chats, err := s.chatRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list chat messages", "user_id", userID, "error", err)
		return nil, err
	}
	return chats, nil
}
