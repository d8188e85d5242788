package task

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists a List as one record per line in a text file.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every record from the file.
// A missing file is created and treated as an empty list. Empty lines are
// skipped; any other line without a status tag is an error.
func (s *Store) Load() (List, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.create(); err != nil {
			return nil, err
		}
		return List{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	defer f.Close()

	var list List
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		t, err := Parse(line)
		if err != nil {
			return nil, &ParseError{Path: s.path, Line: lineNo, Text: line, Err: err}
		}
		list = append(list, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	if list == nil {
		list = List{}
	}
	return list, nil
}

// Append writes a single record to the end of the file without reading or
// rewriting the existing records.
func (s *Store) Append(t Task) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open tasks: %w", err)
	}
	if _, err := fmt.Fprintln(f, t.String()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write task: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write task: %w", err)
	}
	return nil
}

// Save replaces the file contents with the given list.
// The new contents are written to a temporary file and renamed into place.
// A symlinked path is followed and the existing file mode is kept.
func (s *Store) Save(list List) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	target, mode, err := s.target()
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := bufio.NewWriter(tmp)
	for _, t := range list {
		if _, err := fmt.Fprintln(w, t.String()); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write tasks: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync tasks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("failed to replace tasks: %w", err)
	}
	return nil
}

// target returns the file Save should replace and the mode to give it.
func (s *Store) target() (string, os.FileMode, error) {
	resolved, err := filepath.EvalSymlinks(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.path, 0644, nil
	}
	if err != nil {
		return "", 0, fmt.Errorf("failed to resolve tasks path: %w", err)
	}
	fi, err := os.Stat(resolved)
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat tasks: %w", err)
	}
	return resolved, fi.Mode().Perm(), nil
}

func (s *Store) create() error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to create tasks file: %w", err)
	}
	return f.Close()
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}
