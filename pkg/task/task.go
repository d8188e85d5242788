// Package task models the task list and the file it is persisted to.
package task

import (
	"fmt"
	"strconv"
	"strings"
)

// Status represents the state of a task.
type Status string

const (
	StatusPending  Status = "pending"
	StatusComplete Status = "complete"
)

// IsValid returns true if the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusComplete:
		return true
	}
	return false
}

// Tag returns the bracketed marker written in front of a description.
func (s Status) Tag() string {
	return "[" + string(s) + "]"
}

// Task is a single record in the task list.
type Task struct {
	Status      Status
	Description string
}

// New creates a pending task.
func New(description string) Task {
	return Task{
		Status:      StatusPending,
		Description: description,
	}
}

// String returns the record as it is stored on disk and shown in listings.
func (t Task) String() string {
	return t.Status.Tag() + " " + t.Description
}

// Parse decodes one stored line into a task.
// The line must start with a known status tag followed by a space, or
// consist of the tag alone.
func Parse(line string) (Task, error) {
	if !strings.HasPrefix(line, "[") {
		return Task{}, ErrMalformedRecord
	}
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return Task{}, ErrMalformedRecord
	}
	status := Status(line[1:end])
	if !status.IsValid() {
		return Task{}, ErrMalformedRecord
	}
	rest := line[end+1:]
	if rest == "" {
		return Task{Status: status}, nil
	}
	desc, ok := strings.CutPrefix(rest, " ")
	if !ok {
		return Task{}, ErrMalformedRecord
	}
	return Task{Status: status, Description: desc}, nil
}

// List is the ordered task sequence. Positions are 1-based at the API.
type List []Task

// ParseIndex parses a user supplied 1-based index.
// Only unsigned decimal integers are accepted, with an optional leading '+'.
// Surrounding whitespace is not trimmed.
func ParseIndex(arg string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(arg, "+"), 10, 0)
	if err != nil || n > uint64(maxInt) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, arg)
	}
	return int(n), nil
}

const maxInt = int(^uint(0) >> 1)

func (l List) checkIndex(i int) error {
	if i < 1 || i > len(l) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(l))
	}
	return nil
}

// Get returns the task at 1-based position i.
func (l List) Get(i int) (Task, error) {
	if err := l.checkIndex(i); err != nil {
		return Task{}, err
	}
	return l[i-1], nil
}

// Complete returns a copy of the list with task i marked complete.
// Only the status tag is replaced; the description is kept verbatim even if
// it starts with tag text, so completing twice is a no-op.
func (l List) Complete(i int) (List, Task, error) {
	if err := l.checkIndex(i); err != nil {
		return nil, Task{}, err
	}
	out := make(List, len(l))
	copy(out, l)
	out[i-1].Status = StatusComplete
	return out, out[i-1], nil
}

// Remove returns a copy of the list without task i, along with the removed task.
func (l List) Remove(i int) (List, Task, error) {
	removed, err := l.Get(i)
	if err != nil {
		return nil, Task{}, err
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i-1]...)
	out = append(out, l[i:]...)
	return out, removed, nil
}
