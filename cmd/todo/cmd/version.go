package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashvin-to/cli-todo/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for todo.

Displays the current version, commit hash, build date,
and Go/platform information.`,
		Args: noArgs,
		RunE: runVersion,
	}
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.NewInfo(Version, Commit, Date).FillFromBuildInfo()
	_, err := fmt.Fprintln(cmd.OutOrStdout(), info.FullString())
	return err
}
