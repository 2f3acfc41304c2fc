package domain

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string  `toml:"-" yaml:"-"`
	TUI      TUIConfig `toml:"tui" yaml:"tui"`
	Log      LogConfig `toml:"log" yaml:"log"`
}

// TUIConfig holds TUI settings from [tui] section.
type TUIConfig struct {
	PriorityFilter   string `toml:"priority_filter,omitempty" yaml:"priority_filter,omitempty"` // Initial priority filter
	ShowCompleted    bool   `toml:"show_completed" yaml:"show_completed"`                       // Initially show completed tasks
	ShowCompletedSet bool   `toml:"-" yaml:"-"`                                                 // Whether show_completed was explicitly set
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty" yaml:"level,omitempty"` // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty" yaml:"file,omitempty"`   // Log file path (empty = disabled)
}

// Default configuration values.
const (
	DefaultLogLevel = "info"
)

// Config directory and file names.
const (
	ConfigDirName  = "task-tracker" // Directory under XDG_CONFIG_HOME
	ConfigFileName = "config.toml"  // Config file name
)

// GlobalConfigDir returns the global config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, ConfigDirName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// InitialFilter returns the FilterState configured for startup.
// An invalid priority filter falls back to FilterAny.
func (c *Config) InitialFilter() FilterState {
	pf, err := ParsePriorityFilter(c.TUI.PriorityFilter)
	if err != nil {
		pf = FilterAny
	}
	return FilterState{
		ShowCompleted: c.TUI.ShowCompleted,
		Priority:      pf,
	}
}

// RenderConfigTemplate renders the default config file content.
func RenderConfigTemplate(path string) string {
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, struct {
		Path     string
		LogLevel string
	}{
		Path:     path,
		LogLevel: DefaultLogLevel,
	})
	return buf.String()
}
