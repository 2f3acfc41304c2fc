package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/task-tracker/internal/app"
	"github.com/runoshun/task-tracker/internal/domain"
	"github.com/runoshun/task-tracker/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices - contain pointers)
	all   []*domain.Task // Every task, as last loaded
	tasks []*domain.Task // Visible tasks for the current filter

	// Components (structs with pointers)
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	titleInput    textinput.Model
	deadlineInput textinput.Model
	form          domain.FormState
	filter        domain.FilterState

	// Numeric state (smaller types last)
	mode      Mode
	total     int
	cursor    int
	detailID  int // Task shown in ModeDetail
	loadSeq   int // Sequence number of the last issued load
	loadedSeq int // Sequence number of the last applied load
	width     int
	height    int
}

// New creates a new TUI Model with the given container and initial filter.
func New(c *app.Container, filter domain.FilterState) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter task"
	ti.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DDTHH:MM (optional)"
	di.CharLimit = 19

	return &Model{
		container:     c,
		mode:          ModeNormal,
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		help:          help.New(),
		titleInput:    ti,
		deadlineInput: di,
		filter:        filter,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// Filter returns the current view filters.
func (m *Model) Filter() domain.FilterState {
	return m.filter
}

// Form returns the pending form fields.
func (m *Model) Form() domain.FormState {
	return m.form
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// loadTasks returns a command that loads all tasks.
// Filtering happens in applyFilter so a load never carries a stale filter.
func (m *Model) loadTasks() tea.Cmd {
	m.loadSeq++
	seq := m.loadSeq
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
			Filter: domain.FilterState{ShowCompleted: true, Priority: domain.FilterAny},
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Seq: seq}
	}
}

// applyFilter derives the visible tasks from the loaded list.
func (m *Model) applyFilter() {
	m.tasks = slices.Collect(domain.VisibleTasks(m.all, m.filter))
	m.total = len(m.all)
	m.clampCursor()
	if m.mode == ModeDetail && m.detailTask() == nil {
		m.mode = ModeNormal
	}
}

// detailTask returns the task shown in the detail view, or nil if it is gone.
// It is looked up in the full list so hiding it by a filter keeps it open.
func (m *Model) detailTask() *domain.Task {
	for _, t := range m.all {
		if t.ID == m.detailID {
			return t
		}
	}
	return nil
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// submitForm returns a command that turns the pending form into a task.
// The form is copied so the command does not share state with Update.
func (m *Model) submitForm() tea.Cmd {
	form := m.form
	return func() tea.Msg {
		out, err := m.container.SubmitFormUseCase().Execute(
			context.Background(),
			usecase.SubmitFormInput{Form: &form},
		)
		if err != nil {
			return MsgFormError{Err: err}
		}
		return MsgTaskAdded{Task: out.Task}
	}
}

// toggleTask returns a command that flips a task's completion flag.
func (m *Model) toggleTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(
			context.Background(),
			usecase.ToggleTaskInput{TaskID: taskID},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{TaskID: taskID, Found: out.Found}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeleteTaskUseCase().Execute(
			context.Background(),
			usecase.DeleteTaskInput{TaskID: taskID},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: taskID, Found: out.Found}
	}
}

// resetForm clears the pending form and its inputs.
func (m *Model) resetForm() {
	m.form.Reset()
	m.titleInput.Reset()
	m.deadlineInput.Reset()
}

// focusField moves the form focus to the given field.
func (m *Model) focusField(mode Mode) {
	m.mode = mode
	m.titleInput.Blur()
	m.deadlineInput.Blur()
	switch mode {
	case ModeInputTitle:
		m.titleInput.Focus()
	case ModeInputDeadline:
		m.deadlineInput.Focus()
	case ModeNormal, ModeInputPriority, ModeHelp, ModeDetail:
	}
}

// clampCursor keeps the cursor within the visible list.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
