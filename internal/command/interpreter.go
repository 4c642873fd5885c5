package command

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the input mode of the interpreter.
type Mode int

const (
	// Browsing is the default mode: keystrokes drive navigation.
	Browsing Mode = iota
	// Entry is command-entry mode: keystrokes edit the line buffer until
	// commit or cancel.
	Entry
)

// Interpreter owns the command-entry line buffer. It is stateless between
// commits apart from the in-progress line.
type Interpreter struct {
	mode  Mode
	input textinput.Model
}

// New returns an interpreter in browsing mode.
func New() Interpreter {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.CharLimit = 200
	return Interpreter{input: ti}
}

// Mode returns the current input mode.
func (i Interpreter) Mode() Mode { return i.mode }

// Buffer returns the in-progress command line.
func (i Interpreter) Buffer() string { return i.input.Value() }

// View renders the command line for the status row.
func (i Interpreter) View() string { return i.input.View() }

// Begin switches to command-entry mode with an empty buffer and returns the
// cursor blink command for the line editor.
func (i *Interpreter) Begin() tea.Cmd {
	i.mode = Entry
	i.input.SetValue("")
	i.input.Focus()
	return textinput.Blink
}

// Cancel discards the buffer and returns to browsing without parsing.
func (i *Interpreter) Cancel() {
	i.mode = Browsing
	i.input.SetValue("")
	i.input.Blur()
}

// Commit parses the buffered line and returns to browsing. The mode change
// happens regardless of the parse outcome.
func (i *Interpreter) Commit() Command {
	line := i.input.Value()
	i.Cancel()
	return Parse(line)
}

// Update forwards a key event to the line editor while in entry mode.
func (i *Interpreter) Update(msg tea.Msg) tea.Cmd {
	if i.mode != Entry {
		return nil
	}
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	return cmd
}
