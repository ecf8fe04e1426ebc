package di

import (
	"taskhub/application/serviceimpl"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/infrastructure/calendar"
	"taskhub/infrastructure/memstore"
	"taskhub/interfaces/api/handlers"
	"taskhub/pkg/config"
	"taskhub/pkg/logger"
)

type Container struct {
	Config *config.Config

	// Infrastructure
	TaskRepository repositories.TaskRepository
	EventIDIssuer  ports.EventIDIssuer

	// Services
	TaskService    services.TaskService
	SubTaskService services.SubTaskService
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

	c.initInfrastructure()
	c.initServices()

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
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() {
	// Everything lives in process memory; there are no connections to open.
	c.TaskRepository = memstore.NewTaskRepository()
	c.EventIDIssuer = calendar.NewSimulatedIssuer()
	logger.Info("In-memory task store initialized")
}

func (c *Container) initServices() {
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.EventIDIssuer)
	c.SubTaskService = serviceimpl.NewSubTaskService(c.TaskRepository, c.EventIDIssuer)
	logger.Info("Services initialized")
}

// Cleanup exists for symmetry with shutdown; the in-memory store has
// nothing to flush or close.
func (c *Container) Cleanup() error {
	logger.Info("Nothing to clean up, state is in-memory only")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService:    c.TaskService,
		SubTaskService: c.SubTaskService,
	}
}
