package task

import (
	"strings"
	"sync"

	todoerrors "github.com/ashvin-to/cli-todo/internal/errors"
)

// Manager provides the task operations the CLI exposes.
// It wraps a Store and persists after every mutation, rolling the in-memory
// list back when the write fails.
type Manager struct {
	store *Store
	mu    sync.Mutex
}

// NewManager creates a new Manager wrapping the given Store.
func NewManager(store *Store) *Manager {
	return &Manager{
		store: store,
	}
}

// Store returns the underlying store.
func (m *Manager) Store() *Store {
	return m.store
}

// Load loads tasks from the store file.
func (m *Manager) Load() error {
	return m.store.Load()
}

// List returns all tasks in display order.
func (m *Manager) List() []*Task {
	return m.store.Tasks()
}

// Add creates a pending task with the next free ID, appends it and saves.
// The name is trimmed; an empty name is a usage error.
func (m *Manager) Add(name, description string) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, todoerrors.MissingArgument("add", "a task name")
	}

	t := NewTask(m.store.NextID(), name, description)
	if err := t.Validate(); err != nil {
		return nil, todoerrors.InvalidTask(err)
	}

	if err := m.store.Append(t); err != nil {
		return nil, err
	}
	if err := m.store.Save(); err != nil {
		_, _, _ = m.store.Delete(t.ID)
		return nil, err
	}

	return t, nil
}

// Complete marks the task as completed and removes it from the list.
// Completed tasks are not kept.
func (m *Manager) Complete(id int) (*Task, error) {
	t, err := m.delete(id)
	if err != nil {
		return nil, err
	}
	t.MarkCompleted()
	return t, nil
}

// Remove deletes the task with the given ID.
func (m *Manager) Remove(id int) (*Task, error) {
	return m.delete(id)
}

func (m *Manager) delete(id int) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, index, err := m.store.Delete(id)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(); err != nil {
		m.store.Insert(index, t)
		return nil, err
	}
	return t, nil
}
