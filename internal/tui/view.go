package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/reedham/msgsift/internal/command"
)

// Monochrome theme - adaptive for light and dark terminals
var (
	bgBase   = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}
	bgCursor = lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#282828"}

	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#333333"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}).
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Background(bgBase)

	// Cursor row: subtle lighter background
	cursorRowStyle = lipgloss.NewStyle().
			Background(bgCursor)

	// Selected (checked) rows: bold
	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Background(bgBase)

	// Normal rows need background to clear old content
	normalRowStyle = lipgloss.NewStyle().
			Background(bgBase)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#999999"}).
			Background(bgBase).
			Padding(0, 1)

	flashStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#996600", Dark: "#ffcc00"}).
			Background(bgBase)

	emptyStyle = lipgloss.NewStyle().
			Italic(true).
			Faint(true).
			Background(bgBase)
)

const sourceColWidth = 24

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.level {
	case levelDetail:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

// contentWidth returns the usable terminal width, with a fallback before
// the first WindowSizeMsg arrives.
func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

// renderTitleBar renders the shared top bar with the selection tally.
func (m Model) renderTitleBar() string {
	title := "msgsift"
	if m.opts.Version != "" && m.opts.Version != "dev" {
		title = fmt.Sprintf("msgsift [%s]", m.opts.Version)
	}
	if m.opts.SourceDir != "" {
		title += " - " + m.opts.SourceDir
	}
	tally := fmt.Sprintf("%d/%d selected", m.col.CountSelected(), m.col.Len())

	width := m.contentWidth()
	gap := width - lipgloss.Width(title) - lipgloss.Width(tally) - 2
	if gap < 1 {
		gap = 1
	}
	return titleBarStyle.Width(width).Render(title + strings.Repeat(" ", gap) + tally)
}

// renderStatusRow renders the command line while in entry mode, otherwise
// the flash notice (if any).
func (m Model) renderStatusRow() string {
	if m.interp.Mode() == command.Entry {
		return m.interp.View()
	}
	if m.flashMessage != "" {
		return flashStyle.Render(m.flashMessage)
	}
	return ""
}

func (m Model) renderList() string {
	width := m.contentWidth()
	var b strings.Builder

	b.WriteString(m.renderTitleBar())
	b.WriteString("\n")

	header := fmt.Sprintf("%-3s %5s  ", "", "ID")
	if m.opts.ShowSource {
		header += fmt.Sprintf("%-*s  ", sourceColWidth, "SOURCE")
	}
	header += "MESSAGE"
	b.WriteString(tableHeaderStyle.Render(padRight(header, width)))
	b.WriteString("\n")

	count := m.col.Len()
	if count == 0 {
		b.WriteString(emptyStyle.Render(" (no messages)"))
		b.WriteString("\n")
	}

	end := m.cur.scroll + m.pageSize
	if end > count {
		end = count
	}
	for msg := range m.col.All() {
		if msg.ID < m.cur.scroll || msg.ID >= end {
			continue
		}
		indicator := "[ ]"
		if msg.Selected {
			indicator = "[x]"
		}
		row := fmt.Sprintf("%-3s %5d  ", indicator, msg.ID)
		if m.opts.ShowSource {
			row += fmt.Sprintf("%-*s  ", sourceColWidth, truncate(msg.SourceLabel, sourceColWidth))
		}
		preview := firstLine(msg.Content)
		remaining := width - runewidth.StringWidth(row)
		row += truncate(preview, remaining)

		style := normalRowStyle
		if msg.Selected {
			style = selectedRowStyle
		}
		if msg.ID == m.cur.pos {
			style = cursorRowStyle
		}
		b.WriteString(style.Render(padRight(row, width)))
		b.WriteString("\n")
	}

	// Keep the footer pinned to the bottom of the window.
	rendered := end - m.cur.scroll
	if count == 0 {
		rendered = 1
	}
	for i := rendered; i < m.pageSize; i++ {
		b.WriteString(normalRowStyle.Render(padRight("", width)))
		b.WriteString("\n")
	}

	b.WriteString(padRight(m.renderStatusRow(), width))
	b.WriteString("\n")

	pos := ""
	if _, ok := m.cur.focused(count); ok {
		pos = fmt.Sprintf("%d/%d  ", m.cur.pos+1, count)
	}
	b.WriteString(footerStyle.Width(width).Render(
		pos + "space toggle · a all · x none · enter view · : command · q quit"))

	return b.String()
}

func (m Model) renderDetail() string {
	width := m.contentWidth()
	var b strings.Builder

	b.WriteString(m.renderTitleBar())
	b.WriteString("\n")

	msg, err := m.col.Get(m.cur.pos)
	if err != nil {
		b.WriteString(emptyStyle.Render(" (message unavailable)"))
		b.WriteString("\n")
		return b.String()
	}

	state := "deselected"
	if msg.Selected {
		state = "selected"
	}
	header := fmt.Sprintf("message %d · %s · %s", msg.ID, msg.SourceLabel, state)
	b.WriteString(tableHeaderStyle.Render(padRight(truncate(header, width), width)))
	b.WriteString("\n")

	lines := strings.Split(msg.Content, "\n")
	end := m.detailScroll + m.detailPageSize()
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[m.detailScroll:end] {
		b.WriteString(normalRowStyle.Render(padRight(truncate(line, width), width)))
		b.WriteString("\n")
	}
	for i := end - m.detailScroll; i < m.detailPageSize(); i++ {
		b.WriteString(normalRowStyle.Render(padRight("", width)))
		b.WriteString("\n")
	}

	b.WriteString(padRight(m.renderStatusRow(), width))
	b.WriteString("\n")

	b.WriteString(footerStyle.Width(width).Render(fmt.Sprintf(
		"line %d/%d  ↑/↓ scroll · esc back", m.detailScroll+1, len(lines))))

	return b.String()
}

// firstLine returns the first line of a message body for the list preview.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// truncate clips s to the given display width, with an ellipsis when it is
// cut short.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// padRight pads s with spaces to the given display width so row background
// styles cover the full line.
func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
