// Package loader reads a directory of plain text files into message units.
//
// Each regular file under the root becomes one unit, in lexical path order
// so that message ids are stable across runs. Hidden files and hidden
// directories are skipped. Files must be valid UTF-8; one undecodable file
// fails the whole scan.
package loader

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/reedham/msgsift/internal/store"
)

// UnitError reports which file could not be loaded as a message unit.
type UnitError struct {
	Path string
	Err  error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("message unit %s: %v", e.Path, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }

// Scanner walks a message directory and yields one unit per file. It
// implements store.UnitSource and is consumed exactly once.
type Scanner struct {
	root  string
	paths []string // relative paths, lexical order
	next  int
}

// Open lists the message files under dir. The directory must exist; an
// empty directory yields a scanner that is immediately exhausted.
func Open(dir string) (*Scanner, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve message dir %q: %w", dir, err)
	}
	if st, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("open message dir: %w", err)
	} else if !st.IsDir() {
		return nil, fmt.Errorf("open message dir: %s is not a directory", dir)
	}

	s := &Scanner{root: root}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		hidden := strings.HasPrefix(d.Name(), ".")
		if d.IsDir() {
			if hidden {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		s.paths = append(s.paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan message dir %s: %w", dir, err)
	}
	return s, nil
}

// Root returns the absolute directory the scanner reads from.
func (s *Scanner) Root() string { return s.root }

// Next reads the next message unit. It returns io.EOF once every file has
// been consumed.
func (s *Scanner) Next() (store.Unit, error) {
	if s.next >= len(s.paths) {
		return store.Unit{}, io.EOF
	}
	rel := s.paths[s.next]
	s.next++

	data, err := os.ReadFile(filepath.Join(s.root, rel))
	if err != nil {
		return store.Unit{}, &UnitError{Path: rel, Err: err}
	}
	if !utf8.Valid(data) {
		return store.Unit{}, &UnitError{Path: rel, Err: fmt.Errorf("content is not valid UTF-8")}
	}
	return store.Unit{Content: string(data), SourceLabel: rel}, nil
}
