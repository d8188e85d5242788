package cmd

import (
	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove a task",
		Long: `Remove the task at the given 1-based position.

Tasks after it move up by one position.`,
		Args: requireArgs("Usage: remove <Task Index>", 1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.manager.Remove(args[0])
		},
	}
}
