package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/task-tracker/internal/domain"
	"github.com/runoshun/task-tracker/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestView_LoadingBeforeWindowSize(t *testing.T) {
	m := New(nil, domain.FilterState{})
	assert.Equal(t, "Loading...", m.View())
}

func TestView_EmptyStates(t *testing.T) {
	m := newTestModel(t, domain.FilterState{})

	view := m.View()
	assert.Contains(t, view, "Tasks")
	assert.Contains(t, view, "showing 0 of 0 tasks")
	assert.Contains(t, view, "No tasks yet")
	assert.Contains(t, view, "Show completed: off")
	assert.Contains(t, view, "Priority: Any")

	seed(t, m, usecase.AddTaskInput{Title: "Low one", Priority: "low"})
	pressRune(m, 'p')
	pressRune(m, 'p')

	view = m.View()
	assert.Contains(t, view, "showing 0 of 1 tasks")
	assert.Contains(t, view, "No tasks match the current filters")
	assert.Contains(t, view, "Priority: Medium")
}

func TestView_TaskRows(t *testing.T) {
	m := newTestModel(t, domain.FilterState{ShowCompleted: true})
	seed(t, m,
		usecase.AddTaskInput{Title: "Pay rent", Priority: "high", Deadline: "2026-03-01T12:00"},
		usecase.AddTaskInput{Title: "Plan trip", Deadline: "2026-04-01T08:30"},
		usecase.AddTaskInput{Title: "Water plants"},
	)
	pressRune(m, 'j')
	pressRune(m, 'j')
	press(m, tea.KeySpace)

	view := m.View()
	assert.Contains(t, view, "showing 3 of 3 tasks")
	assert.Contains(t, view, "Show completed: on")
	assert.Contains(t, view, "Pay rent")
	assert.Contains(t, view, "[High]")
	assert.Contains(t, view, "due 01/03/2026 12:00 (overdue)")
	assert.Contains(t, view, "due 01/04/2026 08:30")
	assert.NotContains(t, view, "08:30 (overdue)")
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "○")
	assert.Contains(t, view, "> ")
}

func TestView_CompletedTaskIsNotOverdue(t *testing.T) {
	m := newTestModel(t, domain.FilterState{ShowCompleted: true})
	seed(t, m, usecase.AddTaskInput{Title: "Old", Deadline: "2026-01-01"})
	press(m, tea.KeySpace)

	view := m.View()
	assert.Contains(t, view, "due 01/01/2026 00:00")
	assert.NotContains(t, view, "(overdue)")
}

func TestView_LongTitleIsTruncated(t *testing.T) {
	m := newTestModel(t, domain.FilterState{})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	seed(t, m, usecase.AddTaskInput{Title: "abcdefghijklmnopqrstuvwxyz"})

	view := m.View()
	assert.Contains(t, view, "abcdefghijklmno…")
	assert.NotContains(t, view, "xyz")
}

func TestView_Form(t *testing.T) {
	m := newTestModel(t, domain.FilterState{})

	assert.NotContains(t, m.View(), "New Task")

	pressRune(m, 'n')
	typeText(m, "Buy milk")
	press(m, tea.KeyTab)
	press(m, tea.KeyLeft)

	view := m.View()
	assert.Contains(t, view, "New Task")
	assert.Contains(t, view, "Title")
	assert.Contains(t, view, "Buy milk")
	assert.Contains(t, view, "Deadline")
	assert.Contains(t, view, "‹ High ›")
}

func TestView_FormError(t *testing.T) {
	m := newTestModel(t, domain.FilterState{})

	pressRune(m, 'n')
	typeText(m, "X")
	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	typeText(m, "31/12/2026")
	press(m, tea.KeyEnter)

	view := m.View()
	assert.Contains(t, view, "Error:")
	assert.Contains(t, view, "invalid deadline")
	assert.Contains(t, view, "New Task")
}

func TestView_Detail(t *testing.T) {
	m := newTestModel(t, domain.FilterState{})
	seed(t, m, usecase.AddTaskInput{Title: "Inspect me", Priority: "medium", Deadline: "2026-03-20T18:00"})

	pressRune(m, 'v')
	view := m.View()

	assert.Contains(t, view, "Task #1")
	assert.Contains(t, view, "Inspect me")
	assert.Contains(t, view, "Open")
	assert.Contains(t, view, "Medium")
	assert.Contains(t, view, "20/03/2026 18:00")
	assert.Contains(t, view, "10/03/2026 09:00")
}

func TestView_Help(t *testing.T) {
	m := newTestModel(t, domain.FilterState{})

	pressRune(m, '?')
	view := m.View()

	assert.Contains(t, view, "Keybindings")
	assert.Contains(t, view, "new task")
	assert.Contains(t, view, "show completed")
	assert.Contains(t, view, "esc or ? to close")
}
