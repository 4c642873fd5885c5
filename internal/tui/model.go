// Package tui provides the interactive terminal session for msgsift.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reedham/msgsift/internal/command"
	"github.com/reedham/msgsift/internal/export"
	"github.com/reedham/msgsift/internal/store"
)

// viewLevel represents the current navigation depth.
type viewLevel int

const (
	levelList viewLevel = iota
	levelDetail
)

// flashDuration is how long flash messages are displayed.
const flashDuration = 4 * time.Second

// Options configuration for the TUI.
type Options struct {
	SourceDir  string // Directory the collection was loaded from
	ExportPath string // Destination of the export artifact
	ShowSource bool   // Show the source-file column
	Version    string
}

// Model is the main TUI model following the Elm architecture. It owns the
// session state (collection, cursor, interpreter) and hands the collection
// to the selection and export operations for the duration of one dispatched
// command.
type Model struct {
	col    *store.Collection
	interp command.Interpreter
	opts   Options

	// List view
	cur      cursor
	pageSize int

	// Detail view
	level           viewLevel
	detailScroll    int
	detailLineCount int

	// Terminal dimensions
	width  int
	height int

	// Flash message (temporary notification)
	flashMessage   string
	flashExpiresAt time.Time

	quitting bool
}

// New creates a new TUI model over a loaded collection.
func New(col *store.Collection, opts Options) Model {
	return Model{
		col:      col,
		interp:   command.New(),
		opts:     opts,
		pageSize: 20,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// flashClearMsg clears the flash message after timeout.
type flashClearMsg struct{}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width < 0 {
			m.width = 0
		}
		if m.height < 0 {
			m.height = 0
		}
		// Reserve space for: title bar (1) + table header (1) + status row (1) + footer (1) = 4
		m.pageSize = m.height - 4
		if m.pageSize < 1 {
			m.pageSize = 1
		}
		m.cur.ensureVisible(m.pageSize)
		m.clampDetailScroll()
		return m, nil

	case flashClearMsg:
		if time.Now().After(m.flashExpiresAt) || m.flashExpiresAt.IsZero() {
			m.flashMessage = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input. Command-entry mode takes
// priority over view-level handling.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.interp.Mode() == command.Entry {
		return m.handleCommandEntryKeys(msg)
	}

	switch m.level {
	case levelList:
		return m.handleListKeys(msg)
	case levelDetail:
		return m.handleDetailKeys(msg)
	}
	return m, nil
}

// handleCommandEntryKeys handles keys while the command line is open. The
// buffer is never executed until Enter commits it; Esc discards it. Either
// way the session returns to browsing.
func (m Model) handleCommandEntryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.dispatch(m.interp.Commit())

	case "esc":
		m.interp.Cancel()
		return m, nil

	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	default:
		return m, m.interp.Update(msg)
	}
}

// handleListKeys handles keys in the message list view.
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case ":":
		return m, m.interp.Begin()

	case " ":
		return m.dispatch(command.Command{Kind: command.KindToggleCurrent})

	case "a":
		return m.dispatch(command.Command{Kind: command.KindSelectAll})

	case "x":
		return m.dispatch(command.Command{Kind: command.KindDeselectAll})

	case "enter":
		if id, ok := m.cur.focused(m.col.Len()); ok {
			detail, err := m.col.Get(id)
			if err != nil {
				return m.showFlash(fmt.Sprintf("internal error: %v", err))
			}
			m.level = levelDetail
			m.detailScroll = 0
			m.detailLineCount = strings.Count(detail.Content, "\n") + 1
		}
		return m, nil

	default:
		m.navigateList(key)
		return m, nil
	}
}

// handleDetailKeys handles keys in the message detail view.
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc", "q":
		m.level = levelList
		return m, nil

	case "up", "k":
		m.detailScroll--
		m.clampDetailScroll()
	case "down", "j":
		m.detailScroll++
		m.clampDetailScroll()
	case "pgup", "ctrl+u":
		m.detailScroll -= m.detailPageSize()
		m.clampDetailScroll()
	case "pgdown", "ctrl+d":
		m.detailScroll += m.detailPageSize()
		m.clampDetailScroll()
	case "home":
		m.detailScroll = 0
	case "end", "G":
		m.detailScroll = m.detailLineCount
		m.clampDetailScroll()
	}
	return m, nil
}

// dispatch executes a parsed command. User-triggered failures (nothing
// selected, write errors, unknown commands, bad ids) become flash messages
// and never terminate the session.
func (m Model) dispatch(cmd command.Command) (tea.Model, tea.Cmd) {
	switch cmd.Kind {
	case command.KindUnknown:
		if strings.TrimSpace(cmd.Raw) == "" {
			return m, nil
		}
		return m.showFlash(fmt.Sprintf("unknown command: %s", cmd.Raw))

	case command.KindQuit:
		m.quitting = true
		return m, tea.Quit

	case command.KindExport:
		return m.runExport()

	case command.KindToggleCurrent:
		id, ok := m.cur.focused(m.col.Len())
		if !ok {
			return m, nil
		}
		if err := m.col.Toggle(id); err != nil {
			return m.showFlash(fmt.Sprintf("internal error: %v", err))
		}
		return m, nil

	case command.KindToggle:
		if cmd.ID >= m.col.Len() {
			return m.showFlash(fmt.Sprintf("no message with id %d", cmd.ID))
		}
		if err := m.col.Toggle(cmd.ID); err != nil {
			return m.showFlash(fmt.Sprintf("internal error: %v", err))
		}
		return m, nil

	case command.KindSelectAll:
		m.col.SelectAll()
		return m, nil

	case command.KindDeselectAll:
		m.col.DeselectAll()
		return m, nil

	case command.KindRange:
		from, to := cmd.From, cmd.To
		if from > to {
			from, to = to, from
		}
		if to >= m.col.Len() {
			return m.showFlash(fmt.Sprintf("no message with id %d", to))
		}
		if err := m.col.SetRange(from, to, cmd.On); err != nil {
			return m.showFlash(fmt.Sprintf("internal error: %v", err))
		}
		return m, nil
	}

	return m, nil
}

// runExport writes the current selection snapshot to the configured
// artifact path. The write blocks the loop; export volume is bounded by the
// in-memory collection.
func (m Model) runExport() (tea.Model, tea.Cmd) {
	count := m.col.CountSelected()
	if err := export.Write(m.col, m.opts.ExportPath); err != nil {
		if errors.Is(err, export.ErrNothingSelected) {
			return m.showFlash("nothing selected, not exporting")
		}
		return m.showFlash(fmt.Sprintf("export failed: %v", err))
	}
	return m.showFlash(fmt.Sprintf("exported %d messages to %s", count, m.opts.ExportPath))
}

// showFlash displays a temporary flash message.
func (m Model) showFlash(message string) (tea.Model, tea.Cmd) {
	m.flashMessage = message
	m.flashExpiresAt = time.Now().Add(flashDuration)
	return m, tea.Tick(flashDuration, func(t time.Time) tea.Msg {
		return flashClearMsg{}
	})
}

// detailPageSize returns the number of content lines visible in the detail
// view (one extra row because the table header is not drawn).
func (m *Model) detailPageSize() int {
	return m.pageSize + 1
}

// clampDetailScroll ensures detailScroll stays within valid bounds.
func (m *Model) clampDetailScroll() {
	maxScroll := m.detailLineCount - m.detailPageSize()
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.detailScroll > maxScroll {
		m.detailScroll = maxScroll
	}
	if m.detailScroll < 0 {
		m.detailScroll = 0
	}
}
