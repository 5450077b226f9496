package serviceimpl

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sproutly/domain/dto"
	"sproutly/domain/models"
	"sproutly/domain/repositories"
	"sproutly/domain/services"
	"sproutly/pkg/logger"
	"sproutly/pkg/utils"
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check username", "username", req.Username, "error", err)
		return nil, err
	}
	if existing != nil {
		logger.WarnContext(ctx, "Username already exists", "username", req.Username)
		return nil, errors.New("username already exists")
	}

	user := &models.User{
		Username: req.Username,
		Password: req.Password,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "username", req.Username, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User created", "user_id", user.ID, "username", user.Username)

	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to look up user", "username", req.Username, "error", err)
		return "", nil, err
	}
	if user == nil || user.Password != req.Password {
		logger.WarnContext(ctx, "Login failed", "username", req.Username)
		return "", nil, errors.New("invalid username or password")
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "username", user.Username)

	return token, user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *UserServiceImpl) GenerateJWT(user *models.User) (string, error) {
	claims := utils.JWTClaims{
		UserID:   strconv.FormatUint(uint64(user.ID), 10),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
