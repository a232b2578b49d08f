package ports

import (
	"context"

	"task-list/internal/core/domain/entities"
)

// TaskListUseCases is the task list store as seen by its callers. Every
// mutation is visible to the next View call.
type TaskListUseCases interface {
	AddTask(rawText string) (entities.Task, error)
	ToggleTask(id string) error
	DeleteTask(id string) error
	SetFilter(filter entities.Filter)
	View() entities.View
	Watch(ctx context.Context) <-chan entities.View
}
