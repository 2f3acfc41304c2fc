package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/runoshun/task-tracker/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter domain.FilterState // View filters to apply
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task // Visible tasks in insertion order
	Total int            // Number of tasks before filtering
}

// ListTasks is the use case for listing the visible tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{
		tasks: tasks,
	}
}

// Execute returns the tasks passing the filter.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &ListTasksOutput{
		Tasks: slices.Collect(domain.VisibleTasks(all, in.Filter)),
		Total: len(all),
	}, nil
}
