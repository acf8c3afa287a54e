// Package task provides the task data model, the line-oriented file store,
// and the operations that mutate it.
package task

import (
	"fmt"
	"strings"
)

// Delimiter separates the fields of a persisted task line.
const Delimiter = '|'

// Task represents a single to-do item.
type Task struct {
	// ID is the unique, monotonically assigned identifier (1-based).
	ID int
	// Name is the short text of the task. Never empty.
	Name string
	// Description is optional free text.
	Description string
	// Completed reports whether the task has been marked done.
	Completed bool
}

// NewTask creates a pending task with the given ID, name, and description.
func NewTask(id int, name, description string) *Task {
	return &Task{
		ID:          id,
		Name:        name,
		Description: description,
	}
}

// MarkCompleted marks the task as completed.
func (t *Task) MarkCompleted() {
	t.Completed = true
}

// StatusLabel returns the marker shown next to the task in listings.
func (t *Task) StatusLabel() string {
	if t.Completed {
		return "DONE"
	}
	return "PENDING"
}

// Validate checks that the task can be stored and read back intact.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("task ID must be positive, got %d", t.ID)
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("task name is required")
	}
	if err := checkField("name", t.Name); err != nil {
		return err
	}
	return checkField("description", t.Description)
}

// checkField rejects characters that would break the line format.
func checkField(field, value string) error {
	if strings.ContainsRune(value, Delimiter) {
		return fmt.Errorf("task %s must not contain %q", field, string(Delimiter))
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("task %s must not contain line breaks", field)
	}
	return nil
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	clone := *t
	return &clone
}
