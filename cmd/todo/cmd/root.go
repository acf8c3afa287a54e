// Package cmd provides the CLI commands for todo.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashvin-to/cli-todo/internal/config"
	todoerrors "github.com/ashvin-to/cli-todo/internal/errors"
	"github.com/ashvin-to/cli-todo/internal/exitcode"
	"github.com/ashvin-to/cli-todo/internal/logging"
	"github.com/ashvin-to/cli-todo/internal/task"
	"github.com/ashvin-to/cli-todo/internal/version"
)

// Version information - set via ldflags at build time in main.go.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// app holds the state of one invocation. Config, logger and store are
// created on first use so that help and version never touch the task file.
type app struct {
	loader  *config.Loader
	cfg     *config.Config
	logger  *logging.Logger
	manager *task.Manager
}

// NewRootCmd builds the complete command tree.
// Cobra commands keep flag state between runs, so each execution gets a fresh tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{loader: config.NewLoader()}

	root := &cobra.Command{
		Use:   "todo",
		Short: "A simple command-line to-do list",
		Long: `todo keeps a short list of tasks in a plain-text file in your
home directory (~/todo.txt by default).

Run without a command to show the list.`,
		Example: `  todo add Buy milk -d "2 liters"
  todo list
  todo complete 1
  todo rm 2`,
		Args:          rejectUnknownCommand,
		RunE:          a.runList,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	info := version.NewInfo(Version, Commit, Date).FillFromBuildInfo()
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
	root.SetVersionTemplate("todo {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.String("file", "", "task file (default ~/todo.txt)")
	flags.String("config", "", "config file (default ~/.config/todo/config.yaml)")
	flags.BoolP("verbose", "v", false, "log debug details to stderr")
	// The flag exists, so binding cannot fail.
	_ = a.loader.BindFlag("file", flags.Lookup("file"))

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return todoerrors.InvalidFlag(err)
	})

	root.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newCompleteCmd(a),
		newRmCmd(a),
		newVersionCmd(),
		newConfigCmd(a),
	)

	return root, a
}

// Execute runs the command tree against os.Args and returns the exit code.
// This is called by main.main().
func Execute() int {
	root, a := newRoot()
	defer a.close()
	return execute(root)
}

// execute runs root and reports any error on its error writer.
// Usage errors are followed by the usage of the command that failed.
func execute(root *cobra.Command) int {
	cmd, err := root.ExecuteC()
	if err != nil {
		w := root.ErrOrStderr()
		fmt.Fprint(w, todoerrors.Format(err))
		if errors.Is(err, todoerrors.ErrUsage) && cmd != nil {
			fmt.Fprintln(w)
			fmt.Fprint(w, cmd.UsageString())
		}
	}
	return exitcode.FromError(err)
}

// rejectUnknownCommand is the root's argument check: any positional argument
// reaching the root is a command name cobra could not match.
func rejectUnknownCommand(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return todoerrors.UnknownCommand(args[0])
	}
	return nil
}

// noArgs rejects positional arguments with a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return todoerrors.UnexpectedArguments(cmd.Name(), args)
	}
	return nil
}

// loadConfig resolves the effective configuration once per invocation.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := a.loader.LoadConfig(path)
	if err != nil {
		var loadErr *config.LoadError
		if errors.As(err, &loadErr) {
			return nil, todoerrors.ConfigInvalid(loadErr.Path, loadErr.Err)
		}
		return nil, todoerrors.ConfigInvalid(path, err)
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Log.Level = logging.LevelDebug
	}

	a.cfg = cfg
	return cfg, nil
}

// openManager loads configuration, starts logging and reads the task file.
func (a *app) openManager(cmd *cobra.Command) (*task.Manager, error) {
	if a.manager != nil {
		return a.manager, nil
	}

	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging(cmd.ErrOrStderr()))
	if err != nil {
		return nil, todoerrors.ConfigInvalid(a.loader.ConfigFileUsed(), err).
			WithDetails("log_dir", cfg.Log.Dir)
	}
	logger = logger.With("command", cmd.Name())
	a.logger = logger
	logger.Debug("configuration loaded",
		"config_file", a.loader.ConfigFileUsed(),
		"log_file", logger.LogPath(),
		"task_file", cfg.File)

	manager := task.NewManager(task.NewStore(cfg.File, logger))
	if err := manager.Load(); err != nil {
		return nil, err
	}
	store := manager.Store()
	logger.Debug("tasks loaded",
		"path", store.Path(),
		"count", store.Count(),
		"skipped", len(store.Skipped()))

	a.manager = manager
	return manager, nil
}

// close releases the log file, if any.
func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Close()
	}
}
