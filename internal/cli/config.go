package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/task-tracker/internal/app"
	"github.com/runoshun/task-tracker/internal/domain"
	"github.com/runoshun/task-tracker/internal/infra/config"
	"github.com/spf13/cobra"
)

// containerFunc returns the container once the root command has built it.
type containerFunc func() *app.Container

// newConfigCommand creates the config command.
func newConfigCommand(container containerFunc, release func(), configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage task-tracker configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(container, release))
	cmd.AddCommand(newConfigTemplateCommand(container, configPath))
	cmd.AddCommand(newConfigInitCommand(container, configPath))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(container containerFunc, release func()) *cobra.Command {
	var format string
	var color bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer release()

			c := container()
			w := cmd.OutOrStdout()

			if c.ConfigLoader != nil {
				_, _ = fmt.Fprintln(w, "[Loaded from]")
				writeSource(w, c.ConfigLoader.GlobalPath())
				if p := c.ConfigLoader.ExplicitPath(); p != "" {
					writeSource(w, p)
				}
				_, _ = fmt.Fprintln(w)
			}

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			if !color {
				return config.Render(w, c.Config, format)
			}

			var buf bytes.Buffer
			if err := config.Render(&buf, c.Config, format); err != nil {
				return err
			}
			lang := format
			if lang == "" {
				lang = config.FormatTOML
			}
			return highlight(w, buf.String(), lang)
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatTOML, "Output format (toml or yaml)")
	cmd.Flags().BoolVar(&color, "color", false, "Syntax-highlight the output")

	return cmd
}

// writeSource prints a config file path, marking files that do not exist.
func writeSource(w io.Writer, path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", path)
		return
	}
	_, _ = fmt.Fprintf(w, "- %s\n", path)
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand(container containerFunc, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file template to stdout.

It does not depend on existing configuration files and will work even if they are broken.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := targetConfigPath(container, *configPath)
			_, err := fmt.Fprint(cmd.OutOrStdout(), domain.RenderConfigTemplate(path))
			return err
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(container containerFunc, configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long: `Create a configuration file with default settings.

Writes to the path given with --config, or to the global config
(~/.config/task-tracker/config.toml) when no path is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := *configPath
			var err error
			if path != "" {
				err = config.InitConfigFile(path, force)
			} else {
				path, err = configLoader(container).InitGlobalConfig(force)
			}
			if err != nil {
				if errors.Is(err, domain.ErrConfigExists) {
					return fmt.Errorf("%w: %s (use --force to overwrite)", err, path)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return cmd
}

// targetConfigPath returns the file config template describes.
func targetConfigPath(container containerFunc, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return configLoader(container).GlobalPath()
}

// configLoader returns the container's loader, or a default one when the
// container was not built (config init/template skip that step).
func configLoader(container containerFunc) domain.ConfigLoader {
	if c := container(); c != nil && c.ConfigLoader != nil {
		return c.ConfigLoader
	}
	return config.NewLoader("")
}
