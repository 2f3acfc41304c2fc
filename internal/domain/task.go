// Package domain contains core business entities and interfaces.
package domain

import (
	"time"
)

// DeadlineDisplayFormat is the layout used when rendering deadlines (dd/mm/yyyy hh:mm).
const DeadlineDisplayFormat = "02/01/2006 15:04"

// Task represents one tracked item.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created   time.Time  // Creation time
	Deadline  *time.Time // Optional deadline (nil = none)
	Title     string     // Title (required, trimmed)
	Priority  Priority   // Priority (may be unset)
	ID        int        // Unique within the owning store
	Completed bool       // Completion flag
}

// HasDeadline returns true if the task has a deadline.
func (t *Task) HasDeadline() bool {
	return t.Deadline != nil
}

// IsOverdue returns true if the task is open and its deadline is before now.
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.Deadline != nil && t.Deadline.Before(now)
}

// FormatDeadline returns the deadline as dd/mm/yyyy hh:mm, or "" if absent.
func (t *Task) FormatDeadline() string {
	if t.Deadline == nil {
		return ""
	}
	return t.Deadline.Format(DeadlineDisplayFormat)
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	if t.Deadline != nil {
		d := *t.Deadline
		c.Deadline = &d
	}
	return &c
}

// Toggled returns a copy of the task with its completion flag flipped.
func (t *Task) Toggled() *Task {
	c := t.Clone()
	c.Completed = !c.Completed
	return c
}
