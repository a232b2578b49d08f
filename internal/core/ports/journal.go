package ports

import "task-list/internal/core/domain/entities"

// Journal receives an event for every completed mutation. Record must not
// block the caller.
type Journal interface {
	Record(event *entities.TaskEvent)
}
