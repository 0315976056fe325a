package spec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Checklist markers. Matching is a literal prefix test on the trimmed line.
const (
	CompletedMarker = "- [x]"
	PendingMarker   = "- [ ]"
)

// TaskCount is the result of counting checklist items in a tasks document.
type TaskCount struct {
	Total     int
	Completed int
}

// CountTasks counts checklist items in content. Indented items count the
// same as top-level ones; anything else is ignored.
func CountTasks(content string) TaskCount {
	var c TaskCount
	if content == "" {
		return c
	}

	for _, line := range strings.Split(content, "\n") {
		c.add(line)
	}
	return c
}

func (c *TaskCount) add(line string) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, CompletedMarker):
		c.Total++
		c.Completed++
	case strings.HasPrefix(trimmed, PendingMarker):
		c.Total++
	}
}

// CountTasksFile counts checklist items in the file at path. A missing file
// yields a zero count and no error.
func CountTasksFile(path string) (TaskCount, error) {
	// #nosec G304 -- path comes from directory discovery under the project root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return TaskCount{}, nil
		}
		return TaskCount{}, fmt.Errorf("failed to read tasks file: %w", err)
	}
	return CountTasks(string(data)), nil
}
