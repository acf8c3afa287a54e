package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ashvin-to/cli-todo/internal/output"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show all tasks",
		Long: `Show all tasks in the order they were added.

Completed tasks are removed by 'todo complete', so the list normally
holds only pending tasks.`,
		Args: noArgs,
		RunE: a.runList,
	}
}

// runList prints the task list. It also serves the bare "todo" invocation.
func (a *app) runList(cmd *cobra.Command, _ []string) error {
	m, err := a.openManager(cmd)
	if err != nil {
		return err
	}
	return output.NewPrinter(cmd.OutOrStdout()).List(m.List())
}
