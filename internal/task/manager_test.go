package task

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	todoerrors "github.com/ashvin-to/cli-todo/internal/errors"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(NewStore(filepath.Join(t.TempDir(), "todo.txt"), nil))
}

// newFailingManager returns a manager whose saves always fail: the store
// file's parent is a regular file.
func newFailingManager(t *testing.T) *Manager {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return NewManager(NewStore(filepath.Join(blocker, "todo.txt"), nil))
}

func reload(t *testing.T, m *Manager) []*Task {
	t.Helper()
	s := NewStore(m.Store().Path(), nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s.Tasks()
}

func TestManager_Add_AssignsSequentialIDs(t *testing.T) {
	m := newTestManager(t)

	for n := 1; n <= 5; n++ {
		task, err := m.Add("task", "")
		if err != nil {
			t.Fatalf("Add #%d: %v", n, err)
		}
		if task.ID != n {
			t.Errorf("Add #%d ID = %d, want %d", n, task.ID, n)
		}
	}
}

func TestManager_Add_Persists(t *testing.T) {
	m := newTestManager(t)

	task, err := m.Add("  Buy milk  ", "2 liters")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if task.Name != "Buy milk" {
		t.Errorf("Name = %q, want trimmed %q", task.Name, "Buy milk")
	}

	tasks := reload(t, m)
	if len(tasks) != 1 {
		t.Fatalf("file has %d tasks, want 1", len(tasks))
	}
	want := Task{ID: 1, Name: "Buy milk", Description: "2 liters"}
	if *tasks[0] != want {
		t.Errorf("persisted %+v, want %+v", *tasks[0], want)
	}
}

func TestManager_Add_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		taskName    string
		description string
		wantKind    error
	}{
		{"empty name", "", "", todoerrors.ErrUsage},
		{"blank name", "   ", "", todoerrors.ErrUsage},
		{"delimiter in name", "milk|eggs", "", todoerrors.ErrInvalidTask},
		{"newline in description", "Buy milk", "one\ntwo", todoerrors.ErrInvalidTask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)

			_, err := m.Add(tt.taskName, tt.description)
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("Add() error = %v, want %v", err, tt.wantKind)
			}
			if len(m.List()) != 0 {
				t.Error("invalid task was added")
			}
			if _, statErr := os.Stat(m.Store().Path()); !os.IsNotExist(statErr) {
				t.Error("file written for an invalid task")
			}
		})
	}
}

func TestManager_Add_RollsBackOnSaveFailure(t *testing.T) {
	m := newFailingManager(t)

	_, err := m.Add("Buy milk", "")
	if !errors.Is(err, todoerrors.ErrStorage) {
		t.Fatalf("Add() error = %v, want ErrStorage", err)
	}
	if n := len(m.List()); n != 0 {
		t.Errorf("List() has %d tasks after failed save, want 0", n)
	}
}

func TestManager_Complete(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Add("Buy milk", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := m.Add("Call mom", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	done, err := m.Complete(1)
	if err != nil {
		t.Fatalf("Complete(1): %v", err)
	}
	if !done.Completed || done.Name != "Buy milk" {
		t.Errorf("Complete(1) = %+v, want completed Buy milk", *done)
	}

	tasks := reload(t, m)
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("file tasks = %v, want only task 2", taskIDs(tasks))
	}
}

func TestManager_MissingID_LeavesStoreUnchanged(t *testing.T) {
	ops := map[string]func(*Manager, int) (*Task, error){
		"complete": (*Manager).Complete,
		"remove":   (*Manager).Remove,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			m := newTestManager(t)
			if _, err := m.Add("Buy milk", "2 liters"); err != nil {
				t.Fatalf("Add: %v", err)
			}
			before := m.List()

			_, err := op(m, 42)
			if !errors.Is(err, todoerrors.ErrNotFound) {
				t.Fatalf("error = %v, want ErrNotFound", err)
			}

			after := m.List()
			if len(after) != len(before) || *after[0] != *before[0] {
				t.Errorf("store changed: before %+v, after %+v", before, after)
			}
		})
	}
}

func TestManager_Remove(t *testing.T) {
	m := newTestManager(t)
	for _, name := range []string{"A", "B", "C"} {
		if _, err := m.Add(name, ""); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}

	removed, err := m.Remove(2)
	if err != nil {
		t.Fatalf("Remove(2): %v", err)
	}
	if removed.Name != "B" || removed.Completed {
		t.Errorf("Remove(2) = %+v", *removed)
	}
	if ids := taskIDs(reload(t, m)); !slices.Equal(ids, []int{1, 3}) {
		t.Errorf("file IDs = %v, want [1 3]", ids)
	}
}

func TestManager_Remove_RollsBackOnSaveFailure(t *testing.T) {
	m := newFailingManager(t)
	for id := 1; id <= 3; id++ {
		if err := m.Store().Append(NewTask(id, "task", "")); err != nil {
			t.Fatalf("Append(%d): %v", id, err)
		}
	}

	if _, err := m.Remove(2); !errors.Is(err, todoerrors.ErrStorage) {
		t.Fatalf("Remove() error = %v, want ErrStorage", err)
	}
	if ids := taskIDs(m.List()); !slices.Equal(ids, []int{1, 2, 3}) {
		t.Errorf("IDs after failed save = %v, want [1 2 3]", ids)
	}
}

func TestManager_Complete_RollsBackOnSaveFailure(t *testing.T) {
	m := newFailingManager(t)
	if err := m.Store().Append(NewTask(1, "Buy milk", "")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if _, err := m.Complete(1); !errors.Is(err, todoerrors.ErrStorage) {
		t.Fatalf("Complete() error = %v, want ErrStorage", err)
	}
	restored := findTask(m.List(), 1)
	if restored == nil {
		t.Fatal("task 1 missing after failed save")
	}
	if restored.Completed {
		t.Error("restored task is marked completed")
	}
}

func TestManager_IDAfterRemovingFirst(t *testing.T) {
	m := newTestManager(t)

	a, _ := m.Add("A", "")
	b, _ := m.Add("B", "")
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("IDs = %d, %d, want 1, 2", a.ID, b.ID)
	}
	if _, err := m.Remove(1); err != nil {
		t.Fatalf("Remove(1): %v", err)
	}

	c, err := m.Add("C", "")
	if err != nil {
		t.Fatalf("Add(C): %v", err)
	}
	if c.ID != 3 {
		t.Errorf("C ID = %d, want 3", c.ID)
	}
}

func TestManager_LoadExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	if err := os.WriteFile(path, []byte("3|Buy milk||0\n8|Call mom||1\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := NewManager(NewStore(path, nil))
	if err := m.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	task, err := m.Add("Pay rent", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if task.ID != 9 {
		t.Errorf("ID = %d, want 9", task.ID)
	}
}
