package journal

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"task-list/internal/core/domain/entities"
	"task-list/internal/core/ports"

	"go.uber.org/zap"
)

var (
	_ ports.Journal = Noop{}
	_ ports.Journal = (*Writer)(nil)
)

// Noop discards every event. Used when the journal is disabled.
type Noop struct{}

func (Noop) Record(*entities.TaskEvent) {}

type Config struct {
	Buffer        int
	BatchSize     int
	FlushInterval time.Duration
	BatchTimeout  time.Duration
}

func (c Config) withDefaults() Config {
	if c.Buffer <= 0 {
		c.Buffer = 1024
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 64
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = time.Second
	}
	if c.BatchTimeout <= 0 {
		c.BatchTimeout = 5 * time.Second
	}
	return c
}

// Writer queues events in memory and writes them in batches, one unit of
// work per batch. Record never blocks: when the queue is full the event is
// dropped and counted.
type Writer struct {
	cfg Config
	uow ports.UnitOfWorkManager
	log *zap.Logger

	mu     sync.RWMutex
	closed bool
	events chan *entities.TaskEvent
	done   chan struct{}

	written atomic.Uint64
	dropped atomic.Uint64
	failed  atomic.Uint64
}

func NewWriter(uow ports.UnitOfWorkManager, cfg Config, log *zap.Logger) (*Writer, error) {
	if uow == nil {
		return nil, errors.New("unit of work manager is nil")
	}
	if log == nil {
		return nil, errors.New("logger is nil")
	}
	cfg = cfg.withDefaults()
	return &Writer{
		cfg:    cfg,
		uow:    uow,
		log:    log,
		events: make(chan *entities.TaskEvent, cfg.Buffer),
		done:   make(chan struct{}),
	}, nil
}

// Start runs the flush loop in its own goroutine. Close stops it.
func (w *Writer) Start() {
	go w.run()
}

func (w *Writer) Record(event *entities.TaskEvent) {
	if err := event.Validate(); err != nil {
		w.log.Warn("journal: event rejected", zap.Error(err))
		w.dropped.Add(1)
		return
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		w.dropped.Add(1)
		return
	}

	select {
	case w.events <- event:
	default:
		n := w.dropped.Add(1)
		w.log.Warn("journal: queue full, event dropped", zap.String("event_id", event.EventID), zap.Uint64("dropped", n))
	}
}

// Close stops accepting events, flushes what is queued and waits for the
// flush loop to exit or ctx to expire.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.events)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		w.log.Info("journal: closed",
			zap.Uint64("written", w.written.Load()),
			zap.Uint64("dropped", w.dropped.Load()),
			zap.Uint64("failed", w.failed.Load()),
		)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) Written() uint64 { return w.written.Load() }
func (w *Writer) Dropped() uint64 { return w.dropped.Load() }
func (w *Writer) Failed() uint64  { return w.failed.Load() }

func (w *Writer) run() {
	defer close(w.done)

	batch := make([]*entities.TaskEvent, 0, w.cfg.BatchSize)
	timer := time.NewTimer(w.cfg.FlushInterval)
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.events:
			if !ok {
				w.flush(batch)
				return
			}
			batch = append(batch, event)
			if len(batch) >= w.cfg.BatchSize {
				w.flush(batch)
				batch = batch[:0]
				resetTimer(timer, w.cfg.FlushInterval)
			}
		case <-timer.C:
			if len(batch) > 0 {
				w.flush(batch)
				batch = batch[:0]
			}
			timer.Reset(w.cfg.FlushInterval)
		}
	}
}

func (w *Writer) flush(batch []*entities.TaskEvent) {
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.BatchTimeout)
	defer cancel()

	startedAt := time.Now()
	err := w.uow.Do(ctx, func(uow ports.UnitOfWork) error {
		events := uow.Repositories().Events
		for _, event := range batch {
			if err := events.Append(ctx, event); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		w.failed.Add(uint64(len(batch)))
		w.log.Error("journal: batch write failed", zap.Int("events", len(batch)), zap.Error(err))
		return
	}

	w.written.Add(uint64(len(batch)))
	w.log.Debug("journal: batch written", zap.Int("events", len(batch)), zap.Duration("elapsed", time.Since(startedAt)))
}

func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}
