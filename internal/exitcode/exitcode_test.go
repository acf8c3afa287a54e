package exitcode

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	todoerrors "github.com/ashvin-to/cli-todo/internal/errors"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"usage", todoerrors.MissingArgument("add", "a task name"), UserError},
		{"unknown command", todoerrors.UnknownCommand("frob"), UserError},
		{"invalid id", todoerrors.InvalidTaskID("abc"), UserError},
		{"not found", todoerrors.TaskNotFound(9), UserError},
		{"invalid task", todoerrors.InvalidTask(errors.New("bad")), UserError},
		{"config", todoerrors.ConfigInvalid("", errors.New("bad")), UserError},
		{"storage read", todoerrors.StorageRead("/x", fs.ErrPermission), StorageError},
		{"storage write", todoerrors.StorageWrite("/x", fs.ErrPermission), StorageError},
		{"wrapped storage", fmt.Errorf("rm: %w", todoerrors.StorageWrite("/x", fs.ErrPermission)), StorageError},
		{"plain error", errors.New("unknown flag: --bogus"), UserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromError(tt.err); got != tt.want {
				t.Errorf("FromError() = %d, want %d", got, tt.want)
			}
		})
	}
}
