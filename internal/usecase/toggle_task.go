package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/task-tracker/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling task completion.
type ToggleTaskInput struct {
	TaskID int // Task ID to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task  *domain.Task // Updated task (nil if not found)
	Found bool         // Whether the task existed
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskRepository, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute flips the completion flag of the task with the given ID.
// An unknown ID is a no-op, not an error.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		uc.logger.Debug(in.TaskID, "task", "toggle ignored: not found")
		return &ToggleTaskOutput{}, nil
	}

	updated := task.Toggled()
	if err := uc.tasks.Save(updated); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	state := "reopened"
	if updated.Completed {
		state = "completed"
	}
	uc.logger.Info(in.TaskID, "task", state)

	return &ToggleTaskOutput{Task: updated, Found: true}, nil
}
