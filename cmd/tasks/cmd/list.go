package cmd

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  requireArgs("Usage: list", 0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.manager.List()
		},
	}
}
