package cmd

import (
	"errors"
	"fmt"

	"github.com/richgo/tasks/pkg/task"
	"github.com/spf13/cobra"
)

// usageError is a command line mistake: missing arguments, an unknown
// command, or a bad flag. It is printed as-is and never fails the process.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// userMessage returns the text shown for usage and validation errors.
// It reports false for errors that should fail the process.
func userMessage(err error) (string, bool) {
	var uerr *usageError
	if errors.As(err, &uerr) {
		return uerr.msg, true
	}
	if !task.IsValidationError(err) {
		return "", false
	}
	switch {
	case errors.Is(err, task.ErrNoDescription):
		return addUsage, true
	case errors.Is(err, task.ErrMultilineDescription):
		return "Task description cannot contain line breaks.", true
	case errors.Is(err, task.ErrInvalidIndex):
		return "Invalid task index.", true
	default:
		return "Task index out of range.", true
	}
}

// requireArgs rejects calls whose positional argument count is outside
// [lo, hi] with the given usage line. A negative hi means unbounded.
func requireArgs(usage string, lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || (hi >= 0 && len(args) > hi) {
			return &usageError{msg: usage}
		}
		return nil
	}
}
