// Package tui provides the terminal user interface for task-tracker.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal        Mode = iota // Default navigation mode
	ModeInputTitle                // Form: title field focused
	ModeInputPriority             // Form: priority select focused
	ModeInputDeadline             // Form: deadline field focused
	ModeHelp                      // Help overlay mode
	ModeDetail                    // Task detail view mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputTitle:
		return "input_title"
	case ModeInputPriority:
		return "input_priority"
	case ModeInputDeadline:
		return "input_deadline"
	case ModeHelp:
		return "help"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// IsFormMode returns true if the task form is open.
func (m Mode) IsFormMode() bool {
	switch m {
	case ModeInputTitle, ModeInputPriority, ModeInputDeadline:
		return true
	case ModeNormal, ModeHelp, ModeDetail:
		return false
	}
	return false
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeInputTitle || m == ModeInputDeadline
}

// nextField returns the form field after m, wrapping around.
func (m Mode) nextField() Mode {
	switch m {
	case ModeInputTitle:
		return ModeInputPriority
	case ModeInputPriority:
		return ModeInputDeadline
	default:
		return ModeInputTitle
	}
}

// prevField returns the form field before m, wrapping around.
func (m Mode) prevField() Mode {
	switch m {
	case ModeInputDeadline:
		return ModeInputPriority
	case ModeInputPriority:
		return ModeInputTitle
	default:
		return ModeInputDeadline
	}
}
