// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/task-tracker/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Title    string // Task title (blank = no-op)
	Priority string // Priority: "", low, medium, high
	Deadline string // Deadline text (blank = no deadline)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task *domain.Task // The created task, nil when the title was blank
}

// Created returns true if a task was created.
func (o *AddTaskOutput) Created() bool {
	return o != nil && o.Task != nil
}

// AddTask is the use case for adding a task.
type AddTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute appends a new task to the end of the list.
// A blank title is silently ignored: the output carries no task and err is nil.
// An unknown priority or unparseable deadline returns a validation error.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		uc.logger.Debug(0, "task", "add ignored: empty title")
		return &AddTaskOutput{}, nil
	}

	priority, err := domain.ParsePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	deadline, err := domain.ParseDeadline(in.Deadline, now.Location())
	if err != nil {
		return nil, err
	}

	id, err := uc.tasks.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	task := &domain.Task{
		ID:       id,
		Title:    title,
		Priority: priority,
		Deadline: deadline,
		Created:  now,
	}

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	uc.logger.Info(id, "task", fmt.Sprintf("created: %q", title))

	return &AddTaskOutput{Task: task}, nil
}
