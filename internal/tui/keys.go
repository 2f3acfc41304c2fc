package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task management
	New    key.Binding // Open the task form
	Toggle key.Binding // Toggle completion
	Delete key.Binding // Delete task

	// Filters
	ShowCompleted  key.Binding // Toggle show completed
	PriorityFilter key.Binding // Cycle priority filter

	// View
	Detail key.Binding // Toggle detail view
	Help   key.Binding // Show help

	// Form
	Submit    key.Binding // Next field / submit on last field
	NextField key.Binding
	PrevField key.Binding
	Left      key.Binding // Previous option in select
	Right     key.Binding // Next option in select

	// General
	Quit   key.Binding
	Escape key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		New: key.NewBinding(
			key.WithKeys("n", "a"),
			key.WithHelp("n", "new task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " ", "x"),
			key.WithHelp("space", "done/undone"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		ShowCompleted: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "show completed"),
		),
		PriorityFilter: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "priority filter"),
		),
		Detail: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "detail"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next/add"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→/l", "next option"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Toggle, k.Delete, k.ShowCompleted, k.PriorityFilter, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Detail},             // Navigation
		{k.New, k.Toggle, k.Delete},          // Task management
		{k.ShowCompleted, k.PriorityFilter},  // Filters
		{k.NextField, k.PrevField, k.Submit}, // Form
		{k.Help, k.Escape, k.Quit},           // General
	}
}

// formKeyMap is the help.KeyMap shown while the form is open.
type formKeyMap struct {
	keys     KeyMap
	onSelect bool
}

func (f formKeyMap) ShortHelp() []key.Binding {
	if f.onSelect {
		return []key.Binding{f.keys.Left, f.keys.Right, f.keys.NextField, f.keys.Submit, f.keys.Escape}
	}
	return []key.Binding{f.keys.NextField, f.keys.PrevField, f.keys.Submit, f.keys.Escape}
}

func (f formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{f.ShortHelp()}
}
