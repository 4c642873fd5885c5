// Package export writes the selected subset of a collection to a plain
// text artifact.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reedham/msgsift/internal/store"
)

// ErrNothingSelected is returned when an export is requested with no
// messages selected. An empty artifact is almost always a usage mistake, so
// nothing is written.
var ErrNothingSelected = errors.New("no messages selected")

// Write exports the selected messages to path: contents in ascending id
// order, exactly one blank line between messages, no trailing separator.
//
// The artifact appears at path either complete or not at all. The data is
// written to a temp file in the destination directory and renamed into
// place, so a failed or interrupted export leaves no partial file and a
// re-run overwrites any previous artifact cleanly.
func Write(c *store.Collection, path string) error {
	ids := c.SelectedIDs()
	if len(ids) == 0 {
		return ErrNothingSelected
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	tmpPath := tmp.Name()
	cleanupTmp := true
	defer func() {
		if cleanupTmp {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	for i, id := range ids {
		msg, err := c.Get(id)
		if err != nil {
			return fmt.Errorf("read message %d: %w", id, err)
		}
		if i > 0 {
			if _, err := w.WriteString("\n\n"); err != nil {
				return fmt.Errorf("write artifact: %w", err)
			}
		}
		if _, err := w.WriteString(msg.Content); err != nil {
			return fmt.Errorf("write artifact: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("chmod artifact: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("publish artifact: %w", err)
	}
	cleanupTmp = false
	return nil
}
