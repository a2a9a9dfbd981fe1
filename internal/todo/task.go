// Package todo holds the task list and the pure operations on it.
//
// A List is a value. Every operation returns a new List and leaves the
// receiver untouched, so a List handed to a reader never changes under it.
// Operations never fail: unknown ids are ignored and empty text either drops
// the request (Add) or deletes the task (EditCommit).
package todo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyText is reported by Validate for a task with blank text.
	ErrEmptyText = errors.New("empty task text")

	// ErrDuplicateID is reported by Validate when two tasks share an id.
	ErrDuplicateID = errors.New("duplicate task id")
)

// Task is a single list item.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"isCompleted"`
}

// List is an ordered task list, newest first.
type List []Task

// Len returns the number of tasks.
func (l List) Len() int { return len(l) }

// Clone returns a copy that shares no backing array with l.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Find returns the task with the given id.
func (l List) Find(id int64) (Task, bool) {
	if i := l.index(id); i >= 0 {
		return l[i], true
	}
	return Task{}, false
}

// Counts returns the number of active and completed tasks.
func (l List) Counts() (active, completed int) {
	for _, t := range l {
		if t.Completed {
			completed++
		} else {
			active++
		}
	}
	return active, completed
}

// Validate reports whether l could have been produced by the list
// operations: every text is non-blank and ids are unique.
func (l List) Validate() error {
	seen := make(map[int64]struct{}, len(l))
	for i, t := range l {
		if strings.TrimSpace(t.Text) == "" {
			return fmt.Errorf("task %d: %w", i, ErrEmptyText)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("task %d: %w: %d", i, ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

func (l List) index(id int64) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}
