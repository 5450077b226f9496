package services

import (
	"context"

	"sproutly/domain/dto"
	"sproutly/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
	GenerateJWT(user *models.User) (string, error)
}
