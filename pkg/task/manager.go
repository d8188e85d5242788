package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Manager runs one command against a Store and renders the result.
// Every operation validates its input before touching the file, and
// nothing is written to out unless the operation succeeds. Mutations render
// the list they wrote; Add reloads since it never reads before appending.
type Manager struct {
	store  *Store
	out    io.Writer
	logger *log.Logger
}

// NewManager creates a manager. A nil logger discards log output.
func NewManager(store *Store, out io.Writer, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		store:  store,
		out:    out,
		logger: logger,
	}
}

// Add appends a pending task built from words joined by single spaces.
func (m *Manager) Add(words []string) error {
	if len(words) == 0 {
		return ErrNoDescription
	}
	description := strings.Join(words, " ")
	if strings.ContainsAny(description, "\r\n") {
		return ErrMultilineDescription
	}

	t := New(description)
	if err := m.store.Append(t); err != nil {
		return err
	}
	m.logger.Debug("appended task", "path", m.store.Path(), "task", t.String())

	list, err := m.store.Load()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Task added!")
	m.render(list)
	return nil
}

// List prints every task with its 1-based index.
func (m *Manager) List() error {
	list, err := m.store.Load()
	if err != nil {
		return err
	}
	m.logger.Debug("loaded tasks", "path", m.store.Path(), "count", len(list))
	m.render(list)
	return nil
}

// Complete marks the task at the 1-based index in arg as complete.
func (m *Manager) Complete(arg string) error {
	i, err := ParseIndex(arg)
	if err != nil {
		return err
	}
	list, err := m.store.Load()
	if err != nil {
		return err
	}
	updated, t, err := list.Complete(i)
	if err != nil {
		return err
	}
	if err := m.store.Save(updated); err != nil {
		return err
	}
	m.logger.Debug("completed task", "index", i, "task", t.String())

	fmt.Fprintln(m.out, "Task marked as complete!")
	m.render(updated)
	return nil
}

// Remove deletes the task at the 1-based index in arg.
func (m *Manager) Remove(arg string) error {
	i, err := ParseIndex(arg)
	if err != nil {
		return err
	}
	list, err := m.store.Load()
	if err != nil {
		return err
	}
	updated, removed, err := list.Remove(i)
	if err != nil {
		return err
	}
	if err := m.store.Save(updated); err != nil {
		return err
	}
	m.logger.Debug("removed task", "index", i, "task", removed.String(), "remaining", len(updated))

	fmt.Fprintf(m.out, "Removed task: %s\n", removed)
	m.render(updated)
	return nil
}

func (m *Manager) render(list List) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Current tasks:")
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No tasks found.")
		return
	}
	for i, t := range list {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, t)
	}
}
