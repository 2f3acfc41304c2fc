package domain

import (
	"time"
)

// TaskRepository manages the ordered task list.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int) (*Task, error)

	// List retrieves all tasks in insertion order.
	List() ([]*Task, error)

	// Save appends a new task or replaces an existing one in place.
	Save(task *Task) error

	// Delete removes a task by ID. Deleting a missing ID is not an error.
	Delete(id int) error

	// NextID returns the next available task ID.
	NextID() (int, error)
}

// Logger writes categorized log entries.
// taskID 0 means the entry is not tied to a task.
type Logger interface {
	Info(taskID int, category, msg string)
	Debug(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

func (NopLogger) Info(int, string, string)  {}
func (NopLogger) Debug(int, string, string) {}
func (NopLogger) Warn(int, string, string)  {}
func (NopLogger) Error(int, string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- explicit file).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// GlobalPath returns the global config file path, or "" if unavailable.
	GlobalPath() string

	// ExplicitPath returns the config file given on the command line, or "".
	ExplicitPath() string

	// InitGlobalConfig writes the default config to GlobalPath.
	// Returns ErrConfigExists if the file exists and force is false.
	InitGlobalConfig(force bool) (string, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
