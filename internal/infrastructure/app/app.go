package app

import (
	"context"
	"fmt"
	"net"
	"time"

	grpcadapter "task-list/internal/adapters/input/grpc"
	"task-list/internal/adapters/output/postgres"
	"task-list/internal/config"
	"task-list/internal/core/ports"
	"task-list/internal/core/service"
	dbinfra "task-list/internal/infrastructure/db"
	"task-list/internal/infrastructure/journal"
	"task-list/internal/logger"
	tasklistv1 "task-list/pkg/grpc/tasklist/v1"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config     *config.Config
	Log        *zap.Logger
	Service    *service.TaskListService
	GRPCServer *grpc.Server
	Listener   net.Listener
	// Pool is nil when the journal is disabled.
	Pool  *pgxpool.Pool
	close func()
}

func Init() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config load error: %w", err)
	}

	log, err := logger.Init(cfg.Logger.Env)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	var (
		taskJournal  ports.Journal = journal.Noop{}
		pool         *pgxpool.Pool
		closeJournal = func() {}
	)
	if cfg.Journal.Enabled {
		pool, err = dbinfra.ConnectToDB(context.Background(), cfg.GetDSN(), log)
		if err != nil {
			log.Error("failed to connect to db", zap.Error(err))
			_ = log.Sync()
			return nil, err
		}

		writer, err := newJournalWriter(cfg.Journal, pool, log)
		if err != nil {
			log.Error("failed to init journal", zap.Error(err))
			pool.Close()
			_ = log.Sync()
			return nil, err
		}
		writer.Start()
		taskJournal = writer
		closeJournal = func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := writer.Close(ctx); err != nil {
				log.Warn("journal close failed", zap.Error(err))
			}
		}
		log.Info("journal enabled", zap.Int("batch_size", cfg.Journal.BatchSize), zap.Duration("flush_interval", cfg.Journal.FlushInterval))
	}

	closeDeps := func() {
		closeJournal()
		if pool != nil {
			pool.Close()
		}
		_ = log.Sync()
	}

	taskService, err := service.NewTaskListService(taskJournal, log)
	if err != nil {
		log.Error("failed to init task list service", zap.Error(err))
		closeDeps()
		return nil, err
	}

	taskServer, err := grpcadapter.NewTaskListServer(taskService, log)
	if err != nil {
		log.Error("failed to init grpc server", zap.Error(err))
		closeDeps()
		return nil, err
	}

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPC.Port)
	listener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("failed to listen grpc", zap.Error(err))
		closeDeps()
		return nil, err
	}

	grpcServer := grpc.NewServer()
	tasklistv1.RegisterTaskListServiceServer(grpcServer, taskServer)
	reflection.Register(grpcServer)

	log.Info("session started", zap.String("session_id", taskService.SessionID()))

	return &App{
		Config:     cfg,
		Log:        log,
		Service:    taskService,
		GRPCServer: grpcServer,
		Listener:   listener,
		Pool:       pool,
		close: func() {
			_ = listener.Close()
			closeDeps()
		},
	}, nil
}

func newJournalWriter(cfg config.JournalConfig, pool *pgxpool.Pool, log *zap.Logger) (*journal.Writer, error) {
	repoFactory := func(q dbinfra.Querier) ports.Repositories {
		events, err := postgres.NewEventRepository(q, log)
		if err != nil {
			// q is always a live pgx.Tx here.
			panic(err)
		}
		return ports.Repositories{Events: events}
	}

	uow, err := dbinfra.NewUnitOfWorkManager(pool, log, repoFactory)
	if err != nil {
		return nil, err
	}

	return journal.NewWriter(uow, journal.Config{
		Buffer:        cfg.Buffer,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		BatchTimeout:  cfg.BatchTimeout,
	}, log)
}

func (a *App) Close() {
	if a == nil || a.close == nil {
		return
	}
	a.close()
}
