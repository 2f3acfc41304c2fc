package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/task-tracker/internal/app"
	"github.com/runoshun/task-tracker/internal/domain"
	"github.com/runoshun/task-tracker/internal/infra/memstore"
	"github.com/runoshun/task-tracker/internal/testutil"
	"github.com/runoshun/task-tracker/internal/usecase"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// newTestModel returns a sized model backed by an in-memory store.
func newTestModel(t *testing.T, filter domain.FilterState) *Model {
	t.Helper()
	c := app.NewWithDeps(nil, memstore.New(), &testutil.MockClock{NowTime: testNow}, nil)
	m := New(c, filter)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	run(m, m.Init())
	return m
}

// seed adds tasks through the use case and reloads the list.
func seed(t *testing.T, m *Model, inputs ...usecase.AddTaskInput) {
	t.Helper()
	for _, in := range inputs {
		_, err := m.container.AddTaskUseCase().Execute(context.Background(), in)
		require.NoError(t, err)
	}
	run(m, m.loadTasks())
}

// run executes cmd and feeds TUI messages back into the model until
// no further message is produced. Other messages (blink, quit) stop the loop.
func run(m *Model, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(Msg); !ok {
			return
		}
		_, cmd = m.Update(msg)
	}
}

// press sends a special key and runs the resulting command.
func press(m *Model, k tea.KeyType) {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	run(m, cmd)
}

// pressRune sends a single rune key and runs the resulting command.
func pressRune(m *Model, r rune) {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	run(m, cmd)
}

// typeText types into the focused input. The cursor blink command is dropped.
func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}
