// Package exitcode defines exit codes for the CLI.
package exitcode

import (
	"errors"

	todoerrors "github.com/ashvin-to/cli-todo/internal/errors"
)

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, invalid ID, not found, bad config).
	UserError = 1

	// StorageError indicates the task file could not be read or written.
	StorageError = 2
)

// FromError maps an error returned by a command to the process exit code.
func FromError(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, todoerrors.ErrStorage):
		return StorageError
	default:
		return UserError
	}
}
