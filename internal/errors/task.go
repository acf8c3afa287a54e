package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Task and command-line error constructors.

// MissingArgument creates an error for a command invoked without a required argument.
func MissingArgument(command, what string) *TodoError {
	return &TodoError{
		Kind:    ErrUsage,
		Message: fmt.Sprintf("'%s' requires %s", command, what),
		Details: map[string]string{
			"command": command,
		},
		Suggestion: fmt.Sprintf("Run 'todo %s --help' for usage.", command),
	}
}

// UnknownCommand creates an error for an unrecognized command token.
func UnknownCommand(name string) *TodoError {
	return WithSuggestion(ErrUsage,
		fmt.Sprintf("unknown command '%s'", name),
		"Use 'todo help' to see available commands.")
}

// UnexpectedArguments creates an error for a command given arguments it does not take.
func UnexpectedArguments(command string, args []string) *TodoError {
	return &TodoError{
		Kind:    ErrUsage,
		Message: fmt.Sprintf("'%s' got unexpected arguments: %s", command, strings.Join(args, " ")),
		Details: map[string]string{
			"command": command,
		},
		Suggestion: fmt.Sprintf("Run 'todo %s --help' for usage.", command),
	}
}

// InvalidFlag wraps a flag parsing failure as a usage error.
func InvalidFlag(cause error) *TodoError {
	return New(ErrUsage, "invalid flag").WithCause(cause)
}

// InvalidTaskID creates an error for an ID argument that is not an integer.
// The strconv error is not kept as the cause; it only repeats the argument.
func InvalidTaskID(arg string) *TodoError {
	return &TodoError{
		Kind:    ErrInvalidID,
		Message: fmt.Sprintf("invalid task ID '%s': please enter a number", arg),
		Details: map[string]string{
			"argument": arg,
		},
	}
}

// TaskNotFound creates an error when no task has the given ID.
func TaskNotFound(id int) *TodoError {
	return &TodoError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("task with ID %d not found", id),
		Details: map[string]string{
			"task_id": strconv.Itoa(id),
		},
		Suggestion: "Run 'todo list' to see task IDs.",
	}
}

// InvalidTask creates an error for task fields that cannot be stored.
func InvalidTask(reason error) *TodoError {
	err := Wrap(reason, ErrInvalidTask, "invalid task")
	err.Suggestion = "Task names must be non-empty and must not contain '|' or line breaks."
	return err
}

// StorageRead creates an error for a task file that exists but cannot be read.
func StorageRead(path string, cause error) *TodoError {
	err := Wrap(cause, ErrStorage, "could not read tasks").WithDetails("path", path)
	err.Suggestion = "Check the file's permissions, or point --file at another location."
	return err
}

// StorageWrite creates an error for a task file that cannot be written.
func StorageWrite(path string, cause error) *TodoError {
	err := Wrap(cause, ErrStorage, "could not save tasks").WithDetails("path", path)
	err.Suggestion = "Check that the directory exists and is writable. No changes were saved."
	return err
}

// ConfigInvalid creates an error for configuration that failed to load or validate.
func ConfigInvalid(path string, cause error) *TodoError {
	err := Wrap(cause, ErrConfig, "invalid configuration")
	err.Suggestion = "Fix the configuration file or the TODO_* environment variables."
	if path != "" {
		err.WithDetails("path", path)
	}
	return err
}
