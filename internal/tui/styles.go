package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/task-tracker/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Priority colors
	PriorityLow    lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityHigh   lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	PriorityLow:    lipgloss.Color("#74B9FF"), // Light blue
	PriorityMedium: lipgloss.Color("#FDCB6E"), // Yellow
	PriorityHigh:   lipgloss.Color("#FF7675"), // Salmon
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	HeaderInfo lipgloss.Style

	// Filter bar
	FilterLabel lipgloss.Style
	FilterOn    lipgloss.Style
	FilterOff   lipgloss.Style

	// Task list
	TaskList          lipgloss.Style
	TaskSelected      lipgloss.Style
	TaskID            lipgloss.Style
	TaskIDSelected    lipgloss.Style
	TaskTitle         lipgloss.Style
	TaskTitleSelected lipgloss.Style
	TaskCompleted     lipgloss.Style
	TaskDeadline      lipgloss.Style
	TaskOverdue       lipgloss.Style
	CursorSelected    lipgloss.Style
	IconOpen          lipgloss.Style
	IconDone          lipgloss.Style

	// Priority badges
	PriorityUnset  lipgloss.Style
	PriorityLow    lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityHigh   lipgloss.Style

	// Help
	Help lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Form
	Form          lipgloss.Style
	FormTitle     lipgloss.Style
	FormLabel     lipgloss.Style
	FormLabelHint lipgloss.Style
	FormActive    lipgloss.Style
	FormOption    lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style

	// Detail view
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FilterLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FilterOn: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		FilterOff: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskList: lipgloss.NewStyle().
			MarginBottom(1),

		TaskSelected: lipgloss.NewStyle().
			Background(Colors.Background),

		TaskID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskIDSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		// Completed tasks are dimmed and struck through
		TaskCompleted: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskDeadline: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		TaskOverdue: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		IconOpen: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		IconDone: lipgloss.NewStyle().
			Foreground(Colors.Success),

		PriorityUnset: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		PriorityLow: lipgloss.NewStyle().
			Foreground(Colors.PriorityLow),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(Colors.PriorityMedium),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(Colors.PriorityHigh).
			Bold(true),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Form: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		FormTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		FormLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(10),

		FormLabelHint: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		FormActive: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true).
			Width(10),

		FormOption: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		DetailLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(12),

		DetailValue: lipgloss.NewStyle(),
	}
}

// PriorityStyle returns the badge style for a given priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityLow:
		return s.PriorityLow
	case domain.PriorityMedium:
		return s.PriorityMedium
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityUnset:
		return s.PriorityUnset
	default:
		return s.PriorityUnset
	}
}

// CompletionIcon returns an icon for the task's completion state.
func CompletionIcon(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}
