package ports

import (
	"context"

	"task-list/internal/core/domain/entities"
)

type EventRepository interface {
	Append(ctx context.Context, event *entities.TaskEvent) error
	ListBySession(ctx context.Context, sessionID string) ([]*entities.TaskEvent, error)
	CountByType(ctx context.Context, sessionID string, eventType entities.TaskEventType) (int, error)
}
