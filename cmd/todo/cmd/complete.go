package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	todoerrors "github.com/ashvin-to/cli-todo/internal/errors"
	"github.com/ashvin-to/cli-todo/internal/output"
)

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task as completed",
		Long: `Mark a task as completed. Completed tasks are removed from the list.

Use 'todo list' to see task IDs.`,
		Example: "  todo complete 3",
		RunE:    a.runComplete,
	}
}

func (a *app) runComplete(cmd *cobra.Command, args []string) error {
	id, err := taskIDArg(cmd, args)
	if err != nil {
		return err
	}

	m, err := a.openManager(cmd)
	if err != nil {
		return err
	}

	t, err := m.Complete(id)
	if err != nil {
		return err
	}
	a.logger.Info("task completed", "id", t.ID)

	return output.NewPrinter(cmd.OutOrStdout()).Completed(t)
}

// taskIDArg extracts the single task ID argument of complete and rm.
func taskIDArg(cmd *cobra.Command, args []string) (int, error) {
	switch {
	case len(args) == 0:
		return 0, todoerrors.MissingArgument(cmd.Name(), "a task ID")
	case len(args) > 1:
		return 0, todoerrors.UnexpectedArguments(cmd.Name(), args[1:])
	}
	return parseTaskID(args[0])
}

// parseTaskID converts a command-line argument to a task ID.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, todoerrors.InvalidTaskID(arg)
	}
	return id, nil
}
