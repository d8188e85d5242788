package cmd

import (
	"github.com/spf13/cobra"
)

const addUsage = "Usage: add <Task>"

func newAddCmd(a *app) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add <task>...",
		Short: "Add a pending task",
		Long: `Add a pending task to the end of the list.

All words are joined with single spaces to form the description.
Flags must come before the first word; use -- to pass words that
start with a dash.`,
		Args: requireArgs(addUsage, 1, -1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.manager.Add(args)
		},
	}
	addCmd.Flags().SetInterspersed(false)
	return addCmd
}
