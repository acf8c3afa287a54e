package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	todoerrors "github.com/ashvin-to/cli-todo/internal/errors"
	"github.com/ashvin-to/cli-todo/internal/output"
)

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a task",
		Long: `Add a task to the end of the list.

All arguments are joined with spaces to form the task name, so quoting
is optional. Names and descriptions may not contain '|' or line breaks.
Words starting with '-' are read as flags; put them after '--'.`,
		Example: `  todo add Buy milk
  todo add "Call mom" --description "before Sunday"
  todo add -- -5 degrees outside`,
		RunE: a.runAdd,
	}
	cmd.Flags().StringP("description", "d", "", "optional task description")
	return cmd
}

func (a *app) runAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return todoerrors.MissingArgument("add", "a task name")
	}
	description, _ := cmd.Flags().GetString("description")

	m, err := a.openManager(cmd)
	if err != nil {
		return err
	}

	t, err := m.Add(name, strings.TrimSpace(description))
	if err != nil {
		return err
	}
	a.logger.Info("task added", "id", t.ID)

	return output.NewPrinter(cmd.OutOrStdout()).Added(t)
}
