// Package command implements the colon-command language: a two-state input
// machine (browsing vs. command entry) and a line parser producing typed
// commands for the application loop to dispatch.
package command

import (
	"strconv"
	"strings"
)

// Kind identifies a parsed command.
type Kind int

const (
	// KindUnknown is any line that matches no command, including the
	// empty line. Raw carries the original text for the rejection notice.
	KindUnknown Kind = iota
	KindExport
	KindQuit
	KindToggle        // toggle a specific id (ID field)
	KindToggleCurrent // toggle the focused message
	KindSelectAll
	KindDeselectAll
	KindRange // set [From, To] to On
)

// Command is a parsed command line. It is created per commit and consumed
// immediately by the dispatcher.
type Command struct {
	Kind Kind
	Raw  string // original line, set for KindUnknown

	ID       int // KindToggle
	From, To int // KindRange
	On       bool
}

// Parse parses one committed command line. Matching is strict: recognized
// verbs with unexpected arguments are unknown rather than silently
// truncated.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: KindUnknown, Raw: line}
	}
	unknown := Command{Kind: KindUnknown, Raw: line}

	switch fields[0] {
	case "export":
		if len(fields) == 1 {
			return Command{Kind: KindExport}
		}
	case "q", "quit":
		if len(fields) == 1 {
			return Command{Kind: KindQuit}
		}
	case "toggle":
		switch len(fields) {
		case 1:
			return Command{Kind: KindToggleCurrent}
		case 2:
			if id, ok := parseID(fields[1]); ok {
				return Command{Kind: KindToggle, ID: id}
			}
		}
	case "select", "deselect":
		on := fields[0] == "select"
		switch {
		case len(fields) == 2 && fields[1] == "all":
			if on {
				return Command{Kind: KindSelectAll}
			}
			return Command{Kind: KindDeselectAll}
		case len(fields) == 3:
			from, okFrom := parseID(fields[1])
			to, okTo := parseID(fields[2])
			if okFrom && okTo {
				return Command{Kind: KindRange, From: from, To: to, On: on}
			}
		}
	}
	return unknown
}

// parseID parses a non-negative message id.
func parseID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
