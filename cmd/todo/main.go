// Package main is the entry point for the todo CLI application.
package main

import (
	"os"

	"github.com/ashvin-to/cli-todo/cmd/todo/cmd"
)

// Version information - set by build flags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	os.Exit(cmd.Execute())
}
