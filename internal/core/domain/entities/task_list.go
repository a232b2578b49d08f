package entities

import "task-list/internal/core/domain/exceptions"

// TaskList is the session's task aggregate: ordered tasks plus the active
// filter. It is not safe for concurrent use.
type TaskList struct {
	tasks  []Task
	issued map[string]struct{}
	filter Filter
}

func NewTaskList() *TaskList {
	return &TaskList{
		issued: make(map[string]struct{}),
		filter: FilterAll,
	}
}

// Add appends a task with the trimmed text. Ids are never accepted twice,
// even after the task that carried them was deleted.
func (l *TaskList) Add(id, rawText string) (Task, error) {
	text := NormalizeText(rawText)
	if text == "" {
		return Task{}, exceptions.ErrEmptyText
	}
	if _, ok := l.issued[id]; ok {
		return Task{}, exceptions.ErrDuplicateTaskID
	}

	task := NewTask(id, text, false)
	l.issued[id] = struct{}{}
	l.tasks = append(l.tasks, task)
	return task, nil
}

func (l *TaskList) Toggle(id string) (Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, exceptions.ErrTaskNotFound
	}
	l.tasks[i].completed = !l.tasks[i].completed
	return l.tasks[i], nil
}

func (l *TaskList) Delete(id string) (Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, exceptions.ErrTaskNotFound
	}
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return removed, nil
}

func (l *TaskList) SetFilter(f Filter) {
	l.filter = f
}

func (l *TaskList) Filter() Filter {
	return l.filter
}

func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of every task in insertion order.
func (l *TaskList) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// View derives the visible tasks and the remaining count. The remaining
// count ignores the filter.
func (l *TaskList) View() View {
	visible := make([]Task, 0, len(l.tasks))
	remaining := 0
	for _, t := range l.tasks {
		if !t.completed {
			remaining++
		}
		if l.filter.Matches(t) {
			visible = append(visible, t)
		}
	}
	return View{
		Tasks:          visible,
		RemainingCount: remaining,
		Filter:         l.filter,
	}
}

func (l *TaskList) indexOf(id string) int {
	for i := range l.tasks {
		if l.tasks[i].id == id {
			return i
		}
	}
	return -1
}
