package tui

import "github.com/runoshun/task-tracker/internal/domain"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task list is loaded.
// Tasks holds every task; the view filters are applied in Update.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
	Seq   int // Load sequence number; older loads are dropped
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskAdded is sent after the form was submitted.
// Task is nil when the title was blank and nothing was created.
type MsgTaskAdded struct {
	Task *domain.Task
}

func (MsgTaskAdded) sealed() {}

// MsgTaskToggled is sent when a task's completion flag was flipped.
type MsgTaskToggled struct {
	TaskID int
	Found  bool
}

func (MsgTaskToggled) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID int
	Found  bool
}

func (MsgTaskDeleted) sealed() {}

// MsgFormError is sent when the form fails validation.
// The form stays open so the input can be corrected.
type MsgFormError struct {
	Err error
}

func (MsgFormError) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
