package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.titleInput.Width = formInputWidth(msg.Width)
		m.deadlineInput.Width = formInputWidth(msg.Width)
		return m, nil

	case MsgTasksLoaded:
		if msg.Seq < m.loadedSeq {
			return m, nil
		}
		m.loadedSeq = msg.Seq
		m.all = msg.Tasks
		m.applyFilter()
		return m, nil

	case MsgTaskAdded:
		if msg.Task == nil {
			// Blank title: nothing was created, keep the form open on the title
			m.focusField(ModeInputTitle)
			return m, nil
		}
		m.resetForm()
		m.focusField(ModeNormal)
		return m, m.loadTasks()

	case MsgTaskToggled:
		return m, m.loadTasks()

	case MsgTaskDeleted:
		return m, m.loadTasks()

	case MsgFormError:
		m.err = msg.Err
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.focusField(ModeNormal)
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.mode.IsInputMode() {
		return m.handleInputMode(msg)
	}

	switch m.mode {
	case ModeInputPriority:
		return m.handlePriorityMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeDetail:
		return m.handleDetailMode(msg)
	case ModeNormal, ModeInputTitle, ModeInputDeadline:
	}

	// Clear error on any key press in normal mode
	m.err = nil
	return m.handleNormalMode(msg)
}

// handleNormalMode handles keys in the task list.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.focusField(ModeInputTitle)
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if task := m.SelectedTask(); task != nil {
			return m, m.toggleTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task := m.SelectedTask(); task != nil {
			return m, m.deleteTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.ShowCompleted):
		m.filter.ShowCompleted = !m.filter.ShowCompleted
		m.applyFilter()
		return m, nil

	case key.Matches(msg, m.keys.PriorityFilter):
		m.filter.Priority = m.filter.Priority.Next()
		m.cursor = 0
		m.applyFilter()
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		if task := m.SelectedTask(); task != nil {
			m.detailID = task.ID
			m.mode = ModeDetail
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleInputMode handles keys while a text field of the form is focused.
func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		// Pending input is kept for the next time the form is opened
		m.err = nil
		m.focusField(ModeNormal)
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.focusField(m.mode.nextField())
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.focusField(m.mode.prevField())
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.mode == ModeInputDeadline {
			m.err = nil
			return m, m.submitForm()
		}
		m.focusField(m.mode.nextField())
		return m, nil
	}

	var cmd tea.Cmd
	if m.mode == ModeInputTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.form.Title = m.titleInput.Value()
	} else {
		m.deadlineInput, cmd = m.deadlineInput.Update(msg)
		m.form.DeadlineText = m.deadlineInput.Value()
	}
	return m, cmd
}

// handlePriorityMode handles keys while the priority select is focused.
func (m *Model) handlePriorityMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.err = nil
		m.focusField(ModeNormal)
	case key.Matches(msg, m.keys.Left):
		m.form.Priority = m.form.Priority.Prev()
	case key.Matches(msg, m.keys.Right):
		m.form.Priority = m.form.Priority.Next()
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.Submit):
		m.focusField(m.mode.nextField())
	case key.Matches(msg, m.keys.PrevField):
		m.focusField(m.mode.prevField())
	}
	return m, nil
}

// handleHelpMode handles keys in the help overlay.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) {
		m.mode = ModeNormal
	}
	return m, nil
}

// handleDetailMode handles keys in the detail view.
func (m *Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Detail):
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Toggle):
		if task := m.detailTask(); task != nil {
			return m, m.toggleTask(task.ID)
		}
	}
	return m, nil
}

// formInputWidth returns the text input width for the given window width.
func formInputWidth(windowWidth int) int {
	w := windowWidth - 24
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	return w
}
