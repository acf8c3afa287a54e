package task

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldCount is the number of delimiter-separated fields in a task line.
const fieldCount = 4

// EncodeLine serializes a task as "<id>|<name>|<description>|<0|1>".
// No escaping is performed; callers validate fields before storing them.
func EncodeLine(t *Task) string {
	completed := "0"
	if t.Completed {
		completed = "1"
	}

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(t.ID))
	sb.WriteRune(Delimiter)
	sb.WriteString(t.Name)
	sb.WriteRune(Delimiter)
	sb.WriteString(t.Description)
	sb.WriteRune(Delimiter)
	sb.WriteString(completed)
	return sb.String()
}

// DecodeLine parses a single persisted line into a task.
// The fourth field takes the remainder of the line, so extra delimiters end up
// in the completed flag and read as not completed.
func DecodeLine(line string) (*Task, error) {
	line = strings.TrimSuffix(line, "\r")

	fields := strings.SplitN(line, string(Delimiter), fieldCount)
	if len(fields) < fieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid task ID %q", fields[0])
	}
	if id <= 0 {
		return nil, fmt.Errorf("task ID must be positive, got %d", id)
	}

	return &Task{
		ID:          id,
		Name:        fields[1],
		Description: fields[2],
		Completed:   fields[3] == "1",
	}, nil
}
