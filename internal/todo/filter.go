package todo

import (
	"fmt"
	"strings"
)

// Filter selects which tasks are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the filters in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter parses a filter name, case-insensitively. An empty name is
// FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("invalid filter: %s", s)
}

// Next returns the filter after f in display order, wrapping around.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Keep reports whether t is visible under f. Unknown filters keep everything.
func (f Filter) Keep(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Visible returns the tasks of l kept by f, in list order. The result is a
// fresh slice; l is not modified.
func Visible(l List, f Filter) []Task {
	out := make([]Task, 0, len(l))
	for _, t := range l {
		if f.Keep(t) {
			out = append(out, t)
		}
	}
	return out
}
