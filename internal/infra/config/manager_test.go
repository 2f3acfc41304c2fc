package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/task-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "task-tracker")
	loader := NewLoaderWithGlobalDir(globalDir, "")

	path, err := loader.InitGlobalConfig(false)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[tui]")
	assert.Contains(t, string(content), `level = "info"`)

	// Template must load cleanly
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
}

func TestInitGlobalConfig_Exists(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, "[log]\nlevel = \"warn\"\n")
	loader := NewLoaderWithGlobalDir(globalDir, "")

	_, err := loader.InitGlobalConfig(false)
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	_, err = loader.InitGlobalConfig(true)
	assert.NoError(t, err)
}

func TestRender(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.TUI.ShowCompleted = true
	cfg.TUI.PriorityFilter = "low"
	cfg.Warnings = []string{"should not be rendered"}

	tests := []struct {
		format string
		want   []string
	}{
		{FormatTOML, []string{"[tui]", "show_completed = true", "priority_filter = ", "low", "[log]", "level = "}},
		{FormatYAML, []string{"tui:", "  show_completed: true", "  priority_filter: low", "log:", "  level: info"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, cfg, tt.format))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			assert.NotContains(t, buf.String(), "should not be rendered")
		})
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, domain.NewDefaultConfig(), "json")
	assert.Error(t, err)
}
