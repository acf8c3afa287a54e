package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ashvin-to/cli-todo/internal/config"
	todoerrors "github.com/ashvin-to/cli-todo/internal/errors"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration todo runs with, after merging the config
file, TODO_* environment variables and command-line flags.

With --save the printed configuration is also written to the config
file (--config, or ~/.config/todo/config.yaml).`,
		Args: noArgs,
		RunE: a.runConfig,
	}
	cmd.Flags().Bool("save", false, "write the effective configuration to the config file")
	return cmd
}

func (a *app) runConfig(cmd *cobra.Command, _ []string) error {
	save, _ := cmd.Flags().GetBool("save")
	if save {
		a.loader.AllowMissingFile()
	}

	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return todoerrors.ConfigInvalid("", err)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if save {
		path, _ := cmd.Flags().GetString("config")
		if err := config.Save(cfg, path); err != nil {
			return todoerrors.ConfigInvalid(path, err)
		}
		cmd.PrintErrln("Configuration saved.")
	}
	return nil
}
