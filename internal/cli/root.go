// Package cli provides the command-line interface for task-tracker.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/task-tracker/internal/app"
	"github.com/runoshun/task-tracker/internal/domain"
	"github.com/runoshun/task-tracker/internal/tui"
	"github.com/spf13/cobra"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// closeContainerFunc releases a container built by the root command, allowing it to be observed in tests.
var closeContainerFunc = (*app.Container).Close

// NewRootCommand creates the root command for task-tracker.
// If c is nil, the container is built from the --config flag before any
// command runs.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var configPath string
	var priority string
	var showCompleted bool
	ownsContainer := c == nil

	// release closes the container if this command built it.
	// RunE defers it; cobra skips post-run hooks when RunE fails.
	release := func() {
		if ownsContainer && c != nil {
			_ = closeContainerFunc(c)
		}
	}

	root := &cobra.Command{
		Use:   "task-tracker",
		Short: "Keyboard-driven task list for the terminal",
		Long: `task-tracker is a small task list that runs in the terminal.

Add tasks with an optional priority and deadline, mark them done,
and narrow the list by completion state and priority.
Tasks live in memory for the lifetime of the session.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// config init/template must work even if the config file is broken
			if cmd.Name() == "init" || cmd.Name() == "template" {
				return nil
			}

			if c == nil {
				container, err := app.New(app.Options{ConfigPath: configPath})
				if err != nil {
					return fmt.Errorf("initialize: %w", err)
				}
				c = container
			}

			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer release()

			filter := c.Config.InitialFilter()
			if cmd.Flags().Changed("show-completed") {
				filter.ShowCompleted = showCompleted
			}
			if cmd.Flags().Changed("priority") {
				pf, err := domain.ParsePriorityFilter(priority)
				if err != nil {
					return err
				}
				filter.Priority = pf
			}

			c.Logger.Info(0, "tui", fmt.Sprintf("starting (show_completed=%t, priority=%s)", filter.ShowCompleted, filter.Priority))
			return launchTUIFunc(c, filter)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file layered over the global config")
	root.Flags().BoolVar(&showCompleted, "show-completed", false, "Start with completed tasks visible")
	root.Flags().StringVarP(&priority, "priority", "p", "", "Start with a priority filter (any, low, medium, high)")

	root.AddCommand(newConfigCommand(func() *app.Container { return c }, release, &configPath))

	return root
}

// launchTUI runs the interactive TUI until the user quits.
func launchTUI(c *app.Container, filter domain.FilterState) error {
	model := tui.New(c, filter)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
