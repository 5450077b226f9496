package di

import (
	"context"

	"gorm.io/gorm"

	"sproutly/application/serviceimpl"
	"sproutly/domain/repositories"
	"sproutly/domain/services"
	"sproutly/infrastructure/postgres"
	"sproutly/interfaces/api/handlers"
	"sproutly/pkg/config"
	"sproutly/pkg/logger"
)

type Container struct {
	Config *config.Config

	DB *gorm.DB

	UserRepository  repositories.UserRepository
	TaskRepository  repositories.TaskRepository
	PlantRepository repositories.PlantRepository
	ChatRepository  repositories.ChatRepository

	UserService  services.UserService
	TaskService  services.TaskService
	PlantService services.PlantService
	ChatService  services.ChatService
	SeedService  services.SeedService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initDatabase(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	// Seeding failures are logged, never fatal.
	if err := c.SeedService.SeedDemoData(context.Background()); err != nil {
		logger.Error("Demo data seeding failed", "error", err)
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initDatabase() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	if err := postgres.Migrate(db); err != nil {
		return err
	}

	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.PlantRepository = postgres.NewPlantRepository(c.DB)
	c.ChatRepository = postgres.NewChatRepository(c.DB)
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.UserRepository)
	c.PlantService = serviceimpl.NewPlantService(c.PlantRepository, c.UserRepository)
	c.ChatService = serviceimpl.NewChatService(c.ChatRepository, c.UserRepository)
	c.SeedService = serviceimpl.NewSeedService(c.UserRepository, c.TaskRepository, c.PlantRepository, c.ChatRepository)
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:  c.UserService,
		TaskService:  c.TaskService,
		PlantService: c.PlantService,
		ChatService:  c.ChatService,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
