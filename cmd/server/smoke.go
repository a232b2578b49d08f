package main

import (
	"context"
	"time"

	"task-list/internal/adapters/output/postgres"
	"task-list/internal/core/domain/entities"
	"task-list/internal/infrastructure/db"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// runJournalSmokeTest writes a throwaway session to the journal table,
// reads it back and removes it.
func runJournalSmokeTest(ctx context.Context, log *zap.Logger, q db.Querier) {
	eventRepo, err := postgres.NewEventRepository(q, log)
	if err != nil {
		log.Error("smoke test: failed to create event repository", zap.Error(err))
		return
	}

	sessionID := "smoke-" + uuid.NewString()
	defer cleanupSmokeSession(ctx, log, eventRepo, sessionID)

	list := entities.NewTaskList()
	task, err := list.Add(uuid.NewString(), "Smoke test task")
	if err != nil {
		log.Error("smoke test: failed to add task", zap.Error(err))
		return
	}
	toggled, err := list.Toggle(task.ID())
	if err != nil {
		log.Error("smoke test: failed to toggle task", zap.Error(err))
		return
	}

	now := time.Now()
	events := []*entities.TaskEvent{
		entities.NewTaskEvent(uuid.NewString(), sessionID, entities.EventTypeTaskAdded, task, now),
		entities.NewTaskEvent(uuid.NewString(), sessionID, entities.EventTypeTaskToggled, toggled, now.Add(time.Millisecond)),
		entities.NewFilterEvent(uuid.NewString(), sessionID, entities.FilterCompleted, now.Add(2*time.Millisecond)),
	}

	log.Info("smoke test: appending events", zap.String("session_id", sessionID), zap.Int("events", len(events)))
	for _, event := range events {
		if err := eventRepo.Append(ctx, event); err != nil {
			log.Error("smoke test: failed to append event", zap.Error(err))
			return
		}
	}

	log.Info("smoke test: re-appending first event")
	if err := eventRepo.Append(ctx, events[0]); err != nil {
		log.Error("smoke test: duplicate append should be ignored", zap.Error(err))
		return
	}

	stored, err := eventRepo.ListBySession(ctx, sessionID)
	if err != nil {
		log.Error("smoke test: failed to list events", zap.Error(err))
		return
	}
	if len(stored) != len(events) {
		log.Error("smoke test: unexpected event count", zap.Int("want", len(events)), zap.Int("got", len(stored)))
		return
	}
	for i, event := range stored {
		if event.EventID != events[i].EventID || event.Type != events[i].Type {
			log.Error("smoke test: events out of order", zap.Int("index", i), zap.String("event_id", event.EventID))
			return
		}
	}

	added, err := eventRepo.CountByType(ctx, sessionID, entities.EventTypeTaskAdded)
	if err != nil {
		log.Error("smoke test: failed to count events", zap.Error(err))
		return
	}
	if added != 1 {
		log.Error("smoke test: unexpected task_added count", zap.Int("got", added))
		return
	}

	log.Info("smoke test: journal round trip ok", zap.String("session_id", sessionID))
}

func cleanupSmokeSession(ctx context.Context, log *zap.Logger, repo *postgres.EventRepository, sessionID string) {
	n, err := repo.DeleteSession(ctx, sessionID)
	if err != nil {
		log.Error("smoke test: failed to cleanup session", zap.Error(err))
		return
	}
	log.Info("smoke test: session cleaned up", zap.Int64("rows", n))
}
