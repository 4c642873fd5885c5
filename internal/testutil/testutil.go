// Package testutil provides shared helpers for msgsift tests.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/reedham/msgsift/internal/store"
)

// MustNoErr fails the test immediately if err is non-nil.
// Use this for setup operations where failure means the test cannot proceed.
func MustNoErr(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

// WriteFile writes a file under dir, creating parent directories as needed.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	MustNoErr(t, os.MkdirAll(filepath.Dir(path), 0o755), "create parent dir")
	MustNoErr(t, os.WriteFile(path, []byte(content), 0o644), "write file")
}

// AssertEqualSlices compares two slices element-by-element.
func AssertEqualSlices[T comparable](t *testing.T, got []T, want ...T) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("got len %d, want %d: %v", len(got), len(want), got)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("at index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// unitSlice is an in-memory store.UnitSource.
type unitSlice struct {
	units []store.Unit
	next  int
}

func (s *unitSlice) Next() (store.Unit, error) {
	if s.next >= len(s.units) {
		return store.Unit{}, io.EOF
	}
	u := s.units[s.next]
	s.next++
	return u, nil
}

// Units builds a unit source from message contents, with synthetic source
// labels.
func Units(contents ...string) store.UnitSource {
	units := make([]store.Unit, len(contents))
	for i, c := range contents {
		units[i] = store.Unit{Content: c, SourceLabel: filepath.Join("msgs", "m"+string(rune('a'+i))+".txt")}
	}
	return &unitSlice{units: units}
}

// MustLoad builds a collection from message contents.
func MustLoad(t *testing.T, contents ...string) *store.Collection {
	t.Helper()
	col, err := store.Load(Units(contents...))
	MustNoErr(t, err, "load collection")
	return col
}
