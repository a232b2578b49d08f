package entities

import (
	"encoding/json"
	"time"

	"task-list/internal/core/domain/exceptions"
)

type TaskEventType string

const (
	EventTypeTaskAdded     TaskEventType = "task_added"
	EventTypeTaskToggled   TaskEventType = "task_toggled"
	EventTypeTaskDeleted   TaskEventType = "task_deleted"
	EventTypeFilterChanged TaskEventType = "filter_changed"
)

// TaskEvent is one journal entry describing a completed store mutation.
type TaskEvent struct {
	EventID    string          `json:"event_id"`
	SessionID  string          `json:"session_id"`
	Type       TaskEventType   `json:"type"`
	TaskID     string          `json:"task_id,omitempty"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type TaskPayload struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type FilterPayload struct {
	Filter Filter `json:"filter"`
}

func NewTaskEvent(eventID, sessionID string, eventType TaskEventType, task Task, occurredAt time.Time) *TaskEvent {
	payload, _ := json.Marshal(TaskPayload{
		Text:      task.Text(),
		Completed: task.Completed(),
	})
	return &TaskEvent{
		EventID:    eventID,
		SessionID:  sessionID,
		Type:       eventType,
		TaskID:     task.ID(),
		Payload:    payload,
		OccurredAt: occurredAt,
	}
}

func NewFilterEvent(eventID, sessionID string, filter Filter, occurredAt time.Time) *TaskEvent {
	payload, _ := json.Marshal(FilterPayload{Filter: filter})
	return &TaskEvent{
		EventID:    eventID,
		SessionID:  sessionID,
		Type:       EventTypeFilterChanged,
		Payload:    payload,
		OccurredAt: occurredAt,
	}
}

func (e *TaskEvent) Validate() error {
	if e == nil {
		return exceptions.ErrEventNil
	}
	if e.EventID == "" {
		return exceptions.ErrEventIDRequired
	}
	if e.SessionID == "" {
		return exceptions.ErrEventSessionRequired
	}
	switch e.Type {
	case EventTypeTaskAdded, EventTypeTaskToggled, EventTypeTaskDeleted, EventTypeFilterChanged:
		return nil
	default:
		return exceptions.ErrUnsupportedEventType
	}
}
