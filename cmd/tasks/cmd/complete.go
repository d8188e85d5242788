package cmd

import (
	"github.com/spf13/cobra"
)

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <index>",
		Short: "Mark a task as complete",
		Long: `Mark the task at the given 1-based position as complete.

The description is kept as is; completing a task twice has no further effect.`,
		Args: requireArgs("Usage: complete <Task Index>", 1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.manager.Complete(args[0])
		},
	}
}
