package entities

import (
	"strings"
	"unicode"
)

type Task struct {
	id        string
	text      string
	completed bool
}

// NewTask builds a task from already validated fields. New tasks enter a
// list through TaskList.Add, which owns text validation.
func NewTask(id, text string, completed bool) Task {
	return Task{
		id:        id,
		text:      text,
		completed: completed,
	}
}

func (t Task) ID() string {
	return t.id
}

func (t Task) Text() string {
	return t.text
}

func (t Task) Completed() bool {
	return t.completed
}

// NormalizeText trims white space on both ends, byte order marks included.
func NormalizeText(raw string) string {
	return strings.TrimFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
