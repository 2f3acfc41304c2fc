// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/runoshun/task-tracker/internal/domain"
	"github.com/runoshun/task-tracker/internal/infra/config"
	"github.com/runoshun/task-tracker/internal/infra/logging"
	"github.com/runoshun/task-tracker/internal/infra/memstore"
	"github.com/runoshun/task-tracker/internal/usecase"
)

// Options holds the settings used to build a Container.
type Options struct {
	ConfigPath string // Explicit config file (optional)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks        domain.TaskRepository
	Clock        domain.Clock
	Logger       domain.Logger
	ConfigLoader domain.ConfigLoader

	// Loaded configuration
	Config *domain.Config

	closeLog func() error
}

// New creates a new Container with an empty in-memory task store.
func New(opts Options) (*Container, error) {
	loader := config.NewLoader(opts.ConfigPath)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	clock := domain.RealClock{}
	logger := logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level)).WithClock(clock)
	for _, w := range cfg.Warnings {
		logger.Warn(0, "config", w)
	}

	return &Container{
		Tasks:        memstore.New(),
		Clock:        clock,
		Logger:       logger,
		ConfigLoader: loader,
		Config:       cfg,
		closeLog:     logger.Close,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Tasks:  tasks,
		Clock:  clock,
		Logger: logger,
		Config: cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closeLog == nil {
		return nil
	}
	return c.closeLog()
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// SubmitFormUseCase returns a new SubmitForm use case.
func (c *Container) SubmitFormUseCase() *usecase.SubmitForm {
	return usecase.NewSubmitForm(c.AddTaskUseCase())
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}
