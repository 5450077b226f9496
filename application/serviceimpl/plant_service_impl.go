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

type PlantServiceImpl struct {
	plantRepo repositories.PlantRepository
	userRepo  repositories.UserRepository
}

func NewPlantService(plantRepo repositories.PlantRepository, userRepo repositories.UserRepository) services.PlantService {
	return &PlantServiceImpl{
		plantRepo: plantRepo,
		userRepo:  userRepo,
	}
}

func (s *PlantServiceImpl) CreatePlant(ctx context.Context, userID uint, req *dto.CreatePlantRequest) (*models.Plant, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.WarnContext(ctx, "User not found for plant creation", "user_id", userID)
		return nil, errors.New("user not found")
	}

	// New plants always start at stage 1 with zero points, whatever the
	// caller sends.
	plant := &models.Plant{
		Name:              req.Name,
		Type:              req.Type,
		Stage:             1,
		Points:            0,
		PointsToNextStage: req.PointsToNextStage,
		MaxStage:          req.MaxStage,
		Completed:         false,
		StartDate:         time.Now(),
		UserID:            userID,
	}

	if err := s.plantRepo.Create(ctx, plant); err != nil {
		logger.ErrorContext(ctx, "Failed to create plant", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Plant created", "plant_id", plant.ID, "user_id", userID)

	return plant, nil
}

func (s *PlantServiceImpl) GetPlant(ctx context.Context, plantID uint) (*models.Plant, error) {
	return s.plantRepo.GetByID(ctx, plantID)
}

func (s *PlantServiceImpl) GetUserPlants(ctx context.Context, userID uint) ([]*models.Plant, error) {
	plants, err := s.plantRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list plants", "user_id", userID, "error", err)
		return nil, err
	}
	return plants, nil
}

func (s *PlantServiceImpl) GetCurrentPlant(ctx context.Context, userID uint) (*models.Plant, error) {
	return s.plantRepo.GetCurrentByUserID(ctx, userID)
}

func (s *PlantServiceImpl) UpdatePlant(ctx context.Context, plantID uint, req *dto.UpdatePlantRequest) (*models.Plant, error) {
	plant, err := s.plantRepo.Update(ctx, plantID, req.ToPlantUpdate())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update plant", "plant_id", plantID, "error", err)
		return nil, err
	}
	if plant == nil {
		logger.WarnContext(ctx, "Plant not found for update", "plant_id", plantID)
		return nil, nil
	}

	logger.InfoContext(ctx, "Plant updated", "plant_id", plantID)

	return plant, nil
}
