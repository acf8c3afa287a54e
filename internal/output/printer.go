package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ashvin-to/cli-todo/internal/task"
)

const (
	// EmptyMessage is printed when the list has no tasks.
	EmptyMessage = "Your to-do list is empty! 🎉"
	// ListHeader precedes the task lines.
	ListHeader = "Your To-Do List:"
	// descriptionIndent prefixes the description line of a task.
	descriptionIndent = "    "
)

// Printer writes command output to w. Writers that are not terminals get
// plain text with no escape sequences.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a Printer bound to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
}

// List prints the tasks in order, or the empty-list message.
func (p *Printer) List(tasks []*task.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(p.w, p.styles.Empty.Render(EmptyMessage))
		return err
	}

	var sb strings.Builder
	sb.WriteString(p.styles.Header.Render(ListHeader))
	sb.WriteByte('\n')
	for _, t := range tasks {
		sb.WriteString(p.taskLine(t))
		sb.WriteByte('\n')
		if t.Description != "" {
			sb.WriteString(descriptionIndent)
			sb.WriteString(p.styles.Description.Render("Description: " + t.Description))
			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(p.w, sb.String())
	return err
}

// taskLine renders "[<id>] [<STATUS>] <name>".
func (p *Printer) taskLine(t *task.Task) string {
	status := p.styles.Pending
	if t.Completed {
		status = p.styles.Done
	}
	return fmt.Sprintf("%s %s %s",
		p.styles.ID.Render(fmt.Sprintf("[%d]", t.ID)),
		status.Render("["+t.StatusLabel()+"]"),
		p.styles.Name.Render(t.Name),
	)
}

// Added confirms a new task.
func (p *Printer) Added(t *task.Task) error {
	return p.confirm(`Added task: "` + t.Name + `"`)
}

// Completed confirms a completed (and removed) task.
func (p *Printer) Completed(t *task.Task) error {
	return p.confirm(fmt.Sprintf("Marked task %d as completed and removed.", t.ID))
}

// Removed confirms a deleted task.
func (p *Printer) Removed(t *task.Task) error {
	return p.confirm(fmt.Sprintf("Removed task %d.", t.ID))
}

func (p *Printer) confirm(msg string) error {
	_, err := fmt.Fprintln(p.w, p.styles.Confirm.Render(msg))
	return err
}
