package tui

import (
	"path/filepath"
	"regexp"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/reedham/msgsift/internal/testutil"
)

// colorProfileMu serializes tests that mutate the global lipgloss color profile.
var colorProfileMu sync.Mutex

// forceColorProfile sets lipgloss to ANSI color output for tests that assert
// on styled output, restoring the original profile via t.Cleanup.
func forceColorProfile(t *testing.T) {
	t.Helper()
	colorProfileMu.Lock()
	orig := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(orig)
		colorProfileMu.Unlock()
	})
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// newTestModel builds a model over the given message contents with a fixed
// window size and an export path under t.TempDir().
func newTestModel(t *testing.T, contents ...string) Model {
	t.Helper()
	col := testutil.MustLoad(t, contents...)
	m := New(col, Options{
		SourceDir:  "msgs",
		ExportPath: filepath.Join(t.TempDir(), "out.txt"),
		ShowSource: true,
	})
	m.width = 80
	m.height = 24
	m.pageSize = 20
	return m
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyNamed(typ tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: typ}
}

// sendKey runs one key event through Update and re-asserts the Model type.
func sendKey(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	newModel, cmd := m.Update(msg)
	mm, ok := newModel.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", newModel)
	}
	return mm, cmd
}

// typeString sends each rune as a key event.
func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = sendKey(t, m, key(r))
	}
	return m
}

// commitCommand opens command mode, types line, and commits it.
func commitCommand(t *testing.T, m Model, line string) Model {
	t.Helper()
	m, _ = sendKey(t, m, key(':'))
	m = typeString(t, m, line)
	m, _ = sendKey(t, m, keyNamed(tea.KeyEnter))
	return m
}
