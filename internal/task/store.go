package task

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	todoerrors "github.com/ashvin-to/cli-todo/internal/errors"
	"github.com/ashvin-to/cli-todo/internal/logging"
)

// SkippedLine describes a persisted line that Load could not parse.
type SkippedLine struct {
	// Line is the 1-based line number in the file.
	Line int
	// Text is the raw line content.
	Text string
	// Reason explains why the line was skipped.
	Reason string
}

// Store holds the ordered task list and reads/writes it to a delimited text file.
type Store struct {
	path    string
	logger  *logging.Logger
	mu      sync.RWMutex
	tasks   []*Task
	skipped []SkippedLine
}

// NewStore creates a new Store for the given path.
// It does not read the file; call Load() for that.
func NewStore(path string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewNoop()
	}
	return &Store{
		path:   path,
		logger: logger,
		tasks:  []*Task{},
	}
}

// Path returns the file path of the store.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory list with the contents of the file.
// A missing file yields an empty store. Malformed lines are logged, recorded
// in Skipped, and otherwise ignored.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = []*Task{}
	s.skipped = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("task file does not exist, starting empty", "path", s.path)
			return nil
		}
		return todoerrors.StorageRead(s.path, err)
	}

	seen := make(map[int]bool)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		t, err := DecodeLine(line)
		if err != nil {
			s.skip(lineNum, line, err.Error())
			continue
		}
		if seen[t.ID] {
			s.skip(lineNum, line, "duplicate task ID")
			continue
		}
		seen[t.ID] = true
		s.tasks = append(s.tasks, t)
	}
	if err := scanner.Err(); err != nil {
		return todoerrors.StorageRead(s.path, err)
	}

	return nil
}

// skip records and logs an unparseable line. Caller holds s.mu.
func (s *Store) skip(lineNum int, text, reason string) {
	s.skipped = append(s.skipped, SkippedLine{Line: lineNum, Text: text, Reason: reason})
	s.logger.Warn("skipping invalid task line", "path", s.path, "line", lineNum, "reason", reason)
}

// Save overwrites the file with every task in order.
// Creates parent directories if they don't exist.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var buf bytes.Buffer
	for _, t := range s.tasks {
		buf.WriteString(EncodeLine(t))
		buf.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return todoerrors.StorageWrite(s.path, err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return todoerrors.StorageWrite(s.path, err)
	}

	s.logger.Debug("saved tasks", "path", s.path, "count", len(s.tasks))
	return nil
}

// Skipped returns the lines the last Load could not parse.
func (s *Store) Skipped() []SkippedLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	skipped := make([]SkippedLine, len(s.skipped))
	copy(skipped, s.skipped)
	return skipped
}

// Tasks returns a copy of all tasks in store order.
func (s *Store) Tasks() []*Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*Task, len(s.tasks))
	for i, t := range s.tasks {
		tasks[i] = t.Clone()
	}
	return tasks
}

// Count returns the total number of tasks.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// NextID returns the ID the next added task receives: one more than the
// largest ID in the store, or 1 when the store is empty.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	maxID := 0
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// Append adds a task at the end of the store.
// Returns an error if a task with the same ID already exists.
func (s *Store) Append(task *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(task.ID) >= 0 {
		return todoerrors.New(todoerrors.ErrInvalidTask, "task ID already exists").
			WithDetails("task_id", strconv.Itoa(task.ID))
	}
	s.tasks = append(s.tasks, task.Clone())
	return nil
}

// Insert places a task at position i, clamped to the list bounds.
// Used to restore a deleted task to its original position.
func (s *Store) Insert(i int, task *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 {
		i = 0
	}
	if i > len(s.tasks) {
		i = len(s.tasks)
	}
	s.tasks = append(s.tasks, nil)
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = task.Clone()
}

// Delete removes a task by ID and returns it with its former position.
// Returns a not-found error if the task doesn't exist.
func (s *Store) Delete(id int) (*Task, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, -1, todoerrors.TaskNotFound(id)
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return removed, i, nil
}

// indexOf returns the position of the task with the given ID, or -1.
// Caller holds s.mu.
func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
