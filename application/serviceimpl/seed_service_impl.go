package serviceimpl

import (
	"context"
	"time"

	"sproutly/domain/models"
	"sproutly/domain/repositories"
	"sproutly/domain/services"
	"sproutly/pkg/logger"
)

const (
	DemoUsername = "demo"
	DemoPassword = "demo1234"
)

type SeedServiceImpl struct {
	userRepo  repositories.UserRepository
	taskRepo  repositories.TaskRepository
	plantRepo repositories.PlantRepository
	chatRepo  repositories.ChatRepository
}

func NewSeedService(
	userRepo repositories.UserRepository,
	taskRepo repositories.TaskRepository,
	plantRepo repositories.PlantRepository,
	chatRepo repositories.ChatRepository,
) services.SeedService {
	return &SeedServiceImpl{
		userRepo:  userRepo,
		taskRepo:  taskRepo,
		plantRepo: plantRepo,
		chatRepo:  chatRepo,
	}
}

// SeedDemoData creates the demo account with a starter plant, four starter
// tasks and a welcome message. The unique index on username settles the race
// between concurrent first starts: the loser's insert fails, and we treat
// that as already seeded.
func (s *SeedServiceImpl) SeedDemoData(ctx context.Context) error {
	existing, err := s.userRepo.GetByUsername(ctx, DemoUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.DebugContext(ctx, "Demo account already present", "user_id", existing.ID)
		return nil
	}

	user := &models.User{
		Username: DemoUsername,
		Password: DemoPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		seeded, checkErr := s.userRepo.GetByUsername(ctx, DemoUsername)
		if checkErr == nil && seeded != nil {
			logger.InfoContext(ctx, "Demo account seeded by another instance", "user_id", seeded.ID)
			return nil
		}
		return err
	}

	plant := &models.Plant{
		Name:              "Sunny",
		Type:              "sunflower",
		Stage:             1,
		Points:            0,
		PointsToNextStage: 100,
		MaxStage:          5,
		Completed:         false,
		StartDate:         time.Now(),
		UserID:            user.ID,
	}
	if err := s.plantRepo.Create(ctx, plant); err != nil {
		return err
	}

	for _, task := range demoTasks(user.ID) {
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return err
		}
	}

	welcome := &models.Chat{
		Message:   "Hi! I'm your Sproutly assistant. Complete tasks to earn points and watch your plant grow. What would you like to work on today?",
		IsUser:    false,
		Timestamp: time.Now(),
		UserID:    user.ID,
	}
	if err := s.chatRepo.Create(ctx, welcome); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Demo account seeded", "user_id", user.ID, "username", user.Username)

	return nil
}

func demoTasks(userID uint) []*models.Task {
	due := func(hours int) *time.Time {
		t := time.Now().Add(time.Duration(hours) * time.Hour)
		return &t
	}

	return []*models.Task{
		{
			Title:       "Drink 8 glasses of water",
			Description: "Stay hydrated throughout the day.",
			DueDate:     due(24),
			Points:      10,
			UserID:      userID,
		},
		{
			Title:       "Take a 30 minute walk",
			Description: "A short walk outside, no phone.",
			DueDate:     due(24),
			Points:      20,
			UserID:      userID,
		},
		{
			Title:       "Read 10 pages",
			Description: "Any book counts.",
			DueDate:     due(48),
			Points:      15,
			UserID:      userID,
		},
		{
			Title:       "Journal before bed",
			Description: "Write down three things that went well today.",
			DueDate:     due(24),
			Points:      10,
			UserID:      userID,
		},
	}
}
