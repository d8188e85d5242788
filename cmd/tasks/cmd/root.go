package cmd

import (
	"fmt"
	"os"

	"github.com/richgo/tasks/pkg/config"
	"github.com/richgo/tasks/pkg/logging"
	"github.com/richgo/tasks/pkg/task"
	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

const (
	rootUsage      = "Usage: tasks <add|list|complete|remove> [arguments]"
	invalidCommand = "Invalid command. Use 'add', 'list', 'complete', or 'remove'."
)

func init() {
	cobra.EnableCaseInsensitive = true
}

// app holds what the root command builds before any subcommand runs.
type app struct {
	manager *task.Manager
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Tasks - a to-do list kept in a plain text file",
		Long: `Tasks keeps an ordered to-do list in a plain text file, one task per line.

Add tasks, list them, mark them complete, or remove them by their
1-based position in the list.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.HasParent() {
				return nil
			}
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &usageError{msg: rootUsage}
			}
			return &usageError{msg: invalidCommand}
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErrorf("%v\n%s", err, cmd.UseLine())
	})
	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newCompleteCmd(a))
	rootCmd.AddCommand(newRemoveCmd(a))
	return rootCmd
}

// setup resolves config and wires the store for the command about to run.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.Debug("resolved config", "command", cmd.Name(), "file", cfg.File, "log_level", cfg.LogLevel)

	a.manager = task.NewManager(task.NewStore(cfg.File), cmd.OutOrStdout(), logger)
	return nil
}

// Execute runs the root command.
// Usage and validation errors are reported here and do not fail the process;
// any other error is returned for the caller to report.
func Execute() error {
	return execute(newRootCmd(), os.Args[1:])
}

func execute(rootCmd *cobra.Command, args []string) error {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if msg, ok := userMessage(err); ok {
		fmt.Fprintln(rootCmd.ErrOrStderr(), msg)
		return nil
	}
	return err
}
