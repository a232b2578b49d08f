package postgres

import (
	"context"
	"errors"

	"task-list/internal/core/domain/entities"
	"task-list/internal/infrastructure/db"

	"go.uber.org/zap"
)

type EventRepository struct {
	db  db.Querier
	log *zap.Logger
}

func NewEventRepository(db db.Querier, log *zap.Logger) (*EventRepository, error) {
	if db == nil {
		return nil, errors.New("database querier is nil")
	}
	if log == nil {
		return nil, errors.New("logger is nil")
	}
	return &EventRepository{
		db:  db,
		log: log,
	}, nil
}

func (r *EventRepository) Append(ctx context.Context, event *entities.TaskEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO task_events (event_id, session_id, type, task_id, payload, occurred_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, COALESCE($6, NOW()))
		ON CONFLICT (event_id) DO NOTHING`

	occurredAt := any(event.OccurredAt)
	if event.OccurredAt.IsZero() {
		occurredAt = nil
	}

	if _, err := r.db.Exec(
		ctx,
		query,
		event.EventID,
		event.SessionID,
		string(event.Type),
		event.TaskID,
		[]byte(event.Payload),
		occurredAt,
	); err != nil {
		r.log.Error("failed to append task event", zap.String("event_id", event.EventID), zap.Error(err))
		return err
	}
	return nil
}

func (r *EventRepository) ListBySession(ctx context.Context, sessionID string) ([]*entities.TaskEvent, error) {
	query := `SELECT event_id, session_id, type, COALESCE(task_id, ''), payload, occurred_at
		FROM task_events WHERE session_id = $1 ORDER BY occurred_at, event_id`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		r.log.Error("failed to list task events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	events := make([]*entities.TaskEvent, 0)
	for rows.Next() {
		var (
			event   entities.TaskEvent
			typ     string
			payload []byte
		)
		if err := rows.Scan(
			&event.EventID,
			&event.SessionID,
			&typ,
			&event.TaskID,
			&payload,
			&event.OccurredAt,
		); err != nil {
			r.log.Error("failed to scan task event row", zap.Error(err))
			return nil, err
		}
		event.Type = entities.TaskEventType(typ)
		event.Payload = payload
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("failed to iterate task event rows", zap.Error(err))
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) CountByType(ctx context.Context, sessionID string, eventType entities.TaskEventType) (int, error) {
	query := `SELECT COUNT(*) FROM task_events WHERE session_id = $1 AND type = $2`

	var n int
	if err := r.db.QueryRow(ctx, query, sessionID, string(eventType)).Scan(&n); err != nil {
		r.log.Error("failed to count task events", zap.Error(err))
		return 0, err
	}
	return n, nil
}

// DeleteSession removes every journal row of a session.
func (r *EventRepository) DeleteSession(ctx context.Context, sessionID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM task_events WHERE session_id = $1`, sessionID)
	if err != nil {
		r.log.Error("failed to delete task events", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
