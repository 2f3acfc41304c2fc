package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/task-tracker/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeDetail:
		content = m.viewDetail()
	case ModeNormal, ModeInputTitle, ModeInputPriority, ModeInputDeadline:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the task list with the form and footer.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewFilterBar())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewTaskList())
	b.WriteString("\n")

	if m.mode.IsFormMode() {
		b.WriteString(m.viewForm())
		b.WriteString("\n")
	}

	b.WriteString(m.viewFooter())
	return b.String()
}

// viewHeader renders the title line with task counts.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks")
	info := m.styles.HeaderInfo.Render(fmt.Sprintf("showing %d of %d tasks", len(m.tasks), m.total))
	return m.styles.Header.Render(title + "  " + info)
}

// viewFilterBar renders the current view filters.
func (m *Model) viewFilterBar() string {
	completed := m.styles.FilterOff.Render("off")
	if m.filter.ShowCompleted {
		completed = m.styles.FilterOn.Render("on")
	}

	priority := m.styles.FilterOff.Render(m.filter.Priority.Display())
	if m.filter.Priority != domain.FilterAny {
		priority = m.styles.FilterOn.Render(m.filter.Priority.Display())
	}

	return m.styles.FilterLabel.Render("Show completed: ") + completed +
		m.styles.FilterLabel.Render("   Priority: ") + priority
}

// viewTaskList renders the visible tasks.
func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		if m.total == 0 {
			return m.styles.HeaderInfo.Render("No tasks yet. Press n to add one.") + "\n"
		}
		return m.styles.HeaderInfo.Render("No tasks match the current filters.") + "\n"
	}

	now := m.container.Clock.Now()
	var b strings.Builder
	for i, task := range m.tasks {
		b.WriteString(m.viewTaskRow(task, i == m.cursor, now))
		b.WriteString("\n")
	}
	return m.styles.TaskList.Render(b.String())
}

// viewTaskRow renders a single task line.
func (m *Model) viewTaskRow(task *domain.Task, selected bool, now time.Time) string {
	cursor := "  "
	idStyle := m.styles.TaskID
	titleStyle := m.styles.TaskTitle
	if selected {
		cursor = m.styles.CursorSelected.Render("> ")
		idStyle = m.styles.TaskIDSelected
		titleStyle = m.styles.TaskTitleSelected
	}

	icon := m.styles.IconOpen.Render(CompletionIcon(false))
	if task.Completed {
		icon = m.styles.IconDone.Render(CompletionIcon(true))
		titleStyle = m.styles.TaskCompleted
	}

	title := runewidth.Truncate(task.Title, m.titleWidth(), "…")
	parts := []string{
		cursor + idStyle.Render(fmt.Sprintf("%3d", task.ID)),
		icon,
		titleStyle.Render(title),
	}

	if task.Priority != domain.PriorityUnset {
		parts = append(parts, m.styles.PriorityStyle(task.Priority).Render("["+task.Priority.Display()+"]"))
	}

	if task.HasDeadline() {
		due := "due " + task.FormatDeadline()
		if task.IsOverdue(now) {
			parts = append(parts, m.styles.TaskOverdue.Render(due+" (overdue)"))
		} else {
			parts = append(parts, m.styles.TaskDeadline.Render(due))
		}
	}

	return strings.Join(parts, " ")
}

// titleWidth returns the column budget for task titles.
func (m *Model) titleWidth() int {
	// cursor, id, icon and the badge/deadline columns
	w := m.width - 50
	if w < 16 {
		w = 16
	}
	return w
}

// viewForm renders the new task form.
func (m *Model) viewForm() string {
	var b strings.Builder
	b.WriteString(m.styles.FormTitle.Render("New Task"))
	b.WriteString("\n\n")

	b.WriteString(m.formLabel("Title", ModeInputTitle))
	b.WriteString(m.titleInput.View())
	b.WriteString("\n")

	b.WriteString(m.formLabel("Priority", ModeInputPriority))
	b.WriteString(m.viewPrioritySelect())
	b.WriteString("\n")

	b.WriteString(m.formLabel("Deadline", ModeInputDeadline))
	b.WriteString(m.deadlineInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.FormLabelHint.Render("enter on the last field adds the task"))

	width := m.width - 8
	if width < 40 {
		width = 40
	}
	return m.styles.Form.Width(width).Render(b.String())
}

// formLabel renders a field label, highlighted when the field is focused.
func (m *Model) formLabel(label string, field Mode) string {
	if m.mode == field {
		return m.styles.FormActive.Render(label)
	}
	return m.styles.FormLabel.Render(label)
}

// viewPrioritySelect renders the priority select as "‹ High ›".
func (m *Model) viewPrioritySelect() string {
	p := m.form.Priority
	value := m.styles.PriorityStyle(p).Render(p.Display())
	if m.mode == ModeInputPriority {
		return m.styles.FormOption.Render("‹ ") + value + m.styles.FormOption.Render(" ›")
	}
	return "  " + value
}

// viewFooter renders the key help line.
func (m *Model) viewFooter() string {
	if m.mode.IsFormMode() {
		return m.help.View(formKeyMap{keys: m.keys, onSelect: m.mode == ModeInputPriority})
	}
	return m.help.View(m.keys)
}

// viewHelp renders the help overlay.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.HeaderText.Render("Keybindings"))
	b.WriteString("\n\n")

	sections := []string{"Navigation", "Tasks", "Filters", "Form", "General"}
	for i, group := range m.keys.FullHelp() {
		b.WriteString(m.styles.FilterLabel.Render(sections[i]))
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s %s\n",
				m.styles.FooterKey.Render(fmt.Sprintf("%-10s", h.Key)),
				h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render("esc or ? to close"))

	return m.styles.Help.Render(b.String())
}

// viewDetail renders the selected task's fields.
func (m *Model) viewDetail() string {
	task := m.detailTask()
	if task == nil {
		return m.styles.HeaderInfo.Render("No task selected")
	}

	status := "Open"
	if task.Completed {
		status = "Done"
	}
	deadline := "-"
	if task.HasDeadline() {
		deadline = task.FormatDeadline()
		if task.IsOverdue(m.container.Clock.Now()) {
			deadline = m.styles.TaskOverdue.Render(deadline + " (overdue)")
		}
	}

	rows := [][2]string{
		{"ID", fmt.Sprintf("%d", task.ID)},
		{"Title", task.Title},
		{"Status", status},
		{"Priority", m.styles.PriorityStyle(task.Priority).Render(task.Priority.Display())},
		{"Deadline", deadline},
		{"Created", task.Created.Format(domain.DeadlineDisplayFormat)},
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, m.styles.DetailTitle.Render(fmt.Sprintf("Task #%d", task.ID)))
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.DetailLabel.Render(r[0]),
			m.styles.DetailValue.Render(r[1]),
		))
	}
	lines = append(lines, "", m.styles.Footer.Render("esc back · enter toggle · q quit"))

	return strings.Join(lines, "\n")
}
