package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ashvin-to/cli-todo/internal/output"
)

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a task",
		Example: "  todo rm 2",
		RunE:    a.runRm,
	}
}

func (a *app) runRm(cmd *cobra.Command, args []string) error {
	id, err := taskIDArg(cmd, args)
	if err != nil {
		return err
	}

	m, err := a.openManager(cmd)
	if err != nil {
		return err
	}

	t, err := m.Remove(id)
	if err != nil {
		return err
	}
	a.logger.Info("task removed", "id", t.ID)

	return output.NewPrinter(cmd.OutOrStdout()).Removed(t)
}
