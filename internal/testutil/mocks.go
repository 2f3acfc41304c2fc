// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"slices"
	"time"

	"github.com/runoshun/task-tracker/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks     []*domain.Task
	GetErr    error
	ListErr   error
	SaveErr   error
	DeleteErr error
	NextIDErr error
	NextIDN   int
}

// NewMockTaskRepository creates a new MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		NextIDN: 1,
	}
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, t := range m.Tasks {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return nil, nil
}

// List returns all tasks in order.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Tasks), nil
}

// Save appends or replaces a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	for i, t := range m.Tasks {
		if t.ID == task.ID {
			m.Tasks[i] = task
			return nil
		}
	}
	m.Tasks = append(m.Tasks, task)
	return nil
}

// Delete removes a task.
func (m *MockTaskRepository) Delete(id int) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Tasks = slices.DeleteFunc(m.Tasks, func(t *domain.Task) bool {
		return t.ID == id
	})
	return nil
}

// NextID returns the next ID and increments the counter.
func (m *MockTaskRepository) NextID() (int, error) {
	if m.NextIDErr != nil {
		return 0, m.NextIDErr
	}
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// MockLogger records log entries for assertions.
type MockLogger struct {
	Entries []string
}

func (m *MockLogger) record(level string, taskID int, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("%s task-%d %s: %s", level, taskID, category, msg))
}

// Info records an info entry.
func (m *MockLogger) Info(taskID int, category, msg string) { m.record("INFO", taskID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID int, category, msg string) { m.record("DEBUG", taskID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(taskID int, category, msg string) { m.record("WARN", taskID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(taskID int, category, msg string) { m.record("ERROR", taskID, category, msg) }
