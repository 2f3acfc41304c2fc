package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/task-tracker/internal/domain"
	"github.com/runoshun/task-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

func newTestAddTask(repo domain.TaskRepository) (*AddTask, *testutil.MockLogger) {
	logger := &testutil.MockLogger{}
	return NewAddTask(repo, &testutil.MockClock{NowTime: testNow}, logger), logger
}

func TestAddTask_Execute_Success(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	uc, logger := newTestAddTask(repo)

	// Execute
	out, err := uc.Execute(context.Background(), AddTaskInput{
		Title:    "Write report",
		Priority: "high",
		Deadline: "2024-05-01T10:00",
	})

	// Assert
	require.NoError(t, err)
	require.True(t, out.Created())
	assert.Equal(t, 1, out.Task.ID)
	assert.Equal(t, "Write report", out.Task.Title)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.False(t, out.Task.Completed)
	assert.Equal(t, testNow, out.Task.Created)
	require.NotNil(t, out.Task.Deadline)
	assert.True(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).Equal(*out.Task.Deadline))

	require.Len(t, repo.Tasks, 1)
	assert.Equal(t, "Write report", repo.Tasks[0].Title)
	assert.Contains(t, logger.Entries, `INFO task-1 task: created: "Write report"`)
}

func TestAddTask_Execute_TrimsTitle(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc, _ := newTestAddTask(repo)

	out, err := uc.Execute(context.Background(), AddTaskInput{Title: "  Buy milk \t"})

	require.NoError(t, err)
	assert.Equal(t, "Buy milk", out.Task.Title)
	assert.Equal(t, domain.PriorityUnset, out.Task.Priority)
	assert.Nil(t, out.Task.Deadline)
}

func TestAddTask_Execute_BlankTitleIsNoop(t *testing.T) {
	for _, title := range []string{"", " ", "\t\n", "   "} {
		t.Run("title="+title, func(t *testing.T) {
			repo := testutil.NewMockTaskRepository()
			uc, logger := newTestAddTask(repo)

			out, err := uc.Execute(context.Background(), AddTaskInput{
				Title:    title,
				Priority: "bogus",
				Deadline: "not a date",
			})

			require.NoError(t, err)
			assert.False(t, out.Created())
			assert.Empty(t, repo.Tasks)
			assert.Equal(t, 1, repo.NextIDN, "no ID should be consumed")
			assert.Equal(t, []string{"DEBUG task-0 task: add ignored: empty title"}, logger.Entries)
		})
	}
}

func TestAddTask_Execute_InvalidPriority(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc, _ := newTestAddTask(repo)

	_, err := uc.Execute(context.Background(), AddTaskInput{Title: "A", Priority: "urgent"})

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Empty(t, repo.Tasks)
}

func TestAddTask_Execute_InvalidDeadline(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc, _ := newTestAddTask(repo)

	_, err := uc.Execute(context.Background(), AddTaskInput{Title: "A", Deadline: "tomorrow"})

	assert.ErrorIs(t, err, domain.ErrInvalidDeadline)
	assert.Empty(t, repo.Tasks)
}

func TestAddTask_Execute_NextIDError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.NextIDErr = assert.AnError
	uc, _ := newTestAddTask(repo)

	_, err := uc.Execute(context.Background(), AddTaskInput{Title: "A"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate task ID")
}

func TestAddTask_Execute_SaveError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.SaveErr = assert.AnError
	uc, _ := newTestAddTask(repo)

	_, err := uc.Execute(context.Background(), AddTaskInput{Title: "A"})

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "save task")
}
