package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ashvin-to/cli-todo/internal/task"
)

func TestPrinter_List_Empty(t *testing.T) {
	var buf bytes.Buffer

	if err := NewPrinter(&buf).List(nil); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if got := buf.String(); got != "Your to-do list is empty! 🎉\n" {
		t.Errorf("List() = %q", got)
	}
}

func TestPrinter_List(t *testing.T) {
	tasks := []*task.Task{
		{ID: 1, Name: "Buy milk", Description: "2 liters"},
		{ID: 2, Name: "Call mom", Completed: true},
		{ID: 5, Name: "Pay rent"},
	}
	var buf bytes.Buffer

	if err := NewPrinter(&buf).List(tasks); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := "Your To-Do List:\n" +
		"[1] [PENDING] Buy milk\n" +
		"    Description: 2 liters\n" +
		"[2] [DONE] Call mom\n" +
		"[5] [PENDING] Pay rent\n"
	if got := buf.String(); got != want {
		t.Errorf("List() =\n%s\nwant\n%s", got, want)
	}
}

func TestPrinter_KeepsTabs(t *testing.T) {
	tk := &task.Task{ID: 1, Name: "a\tb", Description: "x\ty"}
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	if err := p.List([]*task.Task{tk}); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if err := p.Added(tk); err != nil {
		t.Fatalf("Added() error = %v", err)
	}

	want := "Your To-Do List:\n" +
		"[1] [PENDING] a\tb\n" +
		"    Description: x\ty\n" +
		"Added task: \"a\tb\"\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrinter_List_NoEscapeCodesForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	_ = NewPrinter(&buf).List([]*task.Task{{ID: 1, Name: "Buy milk"}})

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("output contains ANSI escapes: %q", buf.String())
	}
}

func TestPrinter_Confirmations(t *testing.T) {
	tests := []struct {
		name  string
		print func(*Printer, *task.Task) error
		want  string
	}{
		{"added", (*Printer).Added, "Added task: \"Buy milk\"\n"},
		{"completed", (*Printer).Completed, "Marked task 3 as completed and removed.\n"},
		{"removed", (*Printer).Removed, "Removed task 3.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.print(NewPrinter(&buf), &task.Task{ID: 3, Name: "Buy milk"}); err != nil {
				t.Fatalf("error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
