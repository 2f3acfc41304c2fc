package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/task-tracker/internal/domain"
	"gopkg.in/yaml.v3"
)

// Output formats supported by Render.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// InitGlobalConfig writes the default config template to the global config path.
// Returns domain.ErrConfigExists if the file exists and force is false.
func (l *Loader) InitGlobalConfig(force bool) (string, error) {
	path := l.GlobalPath()
	if path == "" {
		return "", errors.New("global config directory not available")
	}
	return path, InitConfigFile(path, force)
}

// InitConfigFile writes the default config template to path.
func InitConfigFile(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return domain.ErrConfigExists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	content := domain.RenderConfigTemplate(path)
	return os.WriteFile(path, []byte(content), 0o600)
}

// Render writes the effective configuration in the given format.
func Render(w io.Writer, cfg *domain.Config, format string) error {
	switch format {
	case "", FormatTOML:
		enc := toml.NewEncoder(w)
		return enc.Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatTOML, FormatYAML)
	}
}
