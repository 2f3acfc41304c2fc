package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTask_FormatDeadline(t *testing.T) {
	deadline := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task Task
		want string
	}{
		{"no deadline", Task{ID: 1}, ""},
		{"with deadline", Task{ID: 1, Deadline: &deadline}, "01/05/2024 10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.FormatDeadline())
			assert.Equal(t, tt.want != "", tt.task.HasDeadline())
		})
	}
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&Task{Deadline: &past}).IsOverdue(now))
	assert.False(t, (&Task{Deadline: &past, Completed: true}).IsOverdue(now))
	assert.False(t, (&Task{Deadline: &future}).IsOverdue(now))
	assert.False(t, (&Task{}).IsOverdue(now))
}

func TestTask_Clone(t *testing.T) {
	deadline := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	orig := &Task{ID: 1, Title: "A", Deadline: &deadline}

	c := orig.Clone()
	c.Title = "B"
	*c.Deadline = c.Deadline.Add(time.Hour)

	assert.Equal(t, "A", orig.Title)
	assert.Equal(t, deadline, *orig.Deadline)
}

func TestTask_Toggled(t *testing.T) {
	orig := &Task{ID: 1, Title: "A"}

	once := orig.Toggled()
	twice := once.Toggled()

	assert.False(t, orig.Completed, "original must not change")
	assert.True(t, once.Completed)
	assert.False(t, twice.Completed)
	assert.Equal(t, orig, twice)
}
