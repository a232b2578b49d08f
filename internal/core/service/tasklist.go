package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"task-list/internal/core/domain/entities"
	"task-list/internal/core/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ ports.TaskListUseCases = (*TaskListService)(nil)

type Option func(*TaskListService)

// WithIDGenerator replaces the uuid based task id generator.
func WithIDGenerator(next func() string) Option {
	return func(s *TaskListService) {
		s.newID = next
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *TaskListService) {
		s.now = now
	}
}

func WithSessionID(id string) Option {
	return func(s *TaskListService) {
		s.sessionID = id
	}
}

// TaskListService owns one session's task list. All operations are
// serialised by a single mutex.
type TaskListService struct {
	mu       sync.Mutex
	list     *entities.TaskList
	watchers map[chan entities.View]struct{}

	journal   ports.Journal
	sessionID string
	newID     func() string
	now       func() time.Time
	log       *zap.Logger
}

func NewTaskListService(journal ports.Journal, log *zap.Logger, opts ...Option) (*TaskListService, error) {
	if journal == nil {
		return nil, errors.New("journal is nil")
	}
	if log == nil {
		return nil, errors.New("logger is nil")
	}
	s := &TaskListService{
		list:      entities.NewTaskList(),
		watchers:  make(map[chan entities.View]struct{}),
		journal:   journal,
		sessionID: uuid.NewString(),
		newID:     uuid.NewString,
		now:       time.Now,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *TaskListService) SessionID() string {
	return s.sessionID
}

func (s *TaskListService) AddTask(rawText string) (entities.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.list.Add(s.newID(), rawText)
	if err != nil {
		s.log.Debug("usecase: add task rejected", zap.Error(err))
		return entities.Task{}, err
	}

	s.log.Info("usecase: add task done", zap.String("task_id", task.ID()), zap.Int("tasks", s.list.Len()))
	s.journal.Record(entities.NewTaskEvent(s.newEventID(), s.sessionID, entities.EventTypeTaskAdded, task, s.now()))
	s.notifyLocked()
	return task, nil
}

func (s *TaskListService) ToggleTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.list.Toggle(id)
	if err != nil {
		s.log.Debug("usecase: toggle task rejected", zap.String("task_id", id), zap.Error(err))
		return err
	}

	s.log.Info("usecase: toggle task done", zap.String("task_id", id), zap.Bool("completed", task.Completed()))
	s.journal.Record(entities.NewTaskEvent(s.newEventID(), s.sessionID, entities.EventTypeTaskToggled, task, s.now()))
	s.notifyLocked()
	return nil
}

func (s *TaskListService) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.list.Delete(id)
	if err != nil {
		s.log.Debug("usecase: delete task rejected", zap.String("task_id", id), zap.Error(err))
		return err
	}

	s.log.Info("usecase: delete task done", zap.String("task_id", id), zap.Int("tasks", s.list.Len()))
	s.journal.Record(entities.NewTaskEvent(s.newEventID(), s.sessionID, entities.EventTypeTaskDeleted, task, s.now()))
	s.notifyLocked()
	return nil
}

func (s *TaskListService) SetFilter(filter entities.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.SetFilter(filter)
	s.log.Info("usecase: set filter done", zap.Stringer("filter", filter))
	s.journal.Record(entities.NewFilterEvent(s.newEventID(), s.sessionID, filter, s.now()))
	s.notifyLocked()
}

func (s *TaskListService) View() entities.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.View()
}

// Watch delivers the current view and then the view after every
// completed mutation until ctx is done. Each watcher holds at most one
// pending view; a newer view replaces an unread one.
func (s *TaskListService) Watch(ctx context.Context) <-chan entities.View {
	ch := make(chan entities.View, 1)

	s.mu.Lock()
	ch <- s.list.View()
	s.watchers[ch] = struct{}{}
	s.log.Debug("usecase: watcher added", zap.Int("watchers", len(s.watchers)))
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, ch)
		close(ch)
		s.log.Debug("usecase: watcher removed", zap.Int("watchers", len(s.watchers)))
		s.mu.Unlock()
	}()

	return ch
}

func (s *TaskListService) notifyLocked() {
	if len(s.watchers) == 0 {
		return
	}
	for ch := range s.watchers {
		select {
		case <-ch:
		default:
		}
		ch <- s.list.View()
	}
}

func (s *TaskListService) newEventID() string {
	return uuid.NewString()
}
