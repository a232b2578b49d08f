package entities

import (
	"fmt"
	"strings"

	"task-list/internal/core/domain/exceptions"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

func (f Filter) String() string {
	return string(f)
}

// Matches reports whether a task is visible under f. Unknown filters
// behave like FilterAll.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.completed
	case FilterCompleted:
		return t.completed
	default:
		return true
	}
}

// ParseFilter accepts the wire names case-insensitively. An empty name
// selects FilterAll.
func ParseFilter(name string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FilterAll, nil
	}
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", exceptions.ErrInvalidFilter, name)
	}
	return f, nil
}
