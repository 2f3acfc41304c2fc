package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/task-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithExplicitConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	logPath := filepath.Join(dir, "tasks.log")
	cfgPath := filepath.Join(dir, "config.toml")
	content := "[tui]\nshow_completed = true\n[log]\nfile = \"" + filepath.ToSlash(logPath) + "\"\n[extra]\nx = 1\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	c, err := New(Options{ConfigPath: cfgPath})
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.True(t, c.Config.TUI.ShowCompleted)
	assert.NotNil(t, c.Tasks)

	// Config warnings are written to the log file
	require.NoError(t, c.Close())
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "unknown section: extra")
}

func TestNew_MissingExplicitConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := New(Options{ConfigPath: filepath.Join(t.TempDir(), "nope.toml")})

	assert.Error(t, err)
}

func TestNewWithDeps_Defaults(t *testing.T) {
	c := NewWithDeps(nil, nil, domain.RealClock{}, nil)

	assert.Equal(t, domain.DefaultLogLevel, c.Config.Log.Level)
	assert.IsType(t, domain.NopLogger{}, c.Logger)
	assert.NoError(t, c.Close())
}
