package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"

	"task-list/internal/core/domain/entities"
	"task-list/internal/mapper"
	tasklistv1 "task-list/pkg/grpc/tasklist/v1"

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stats struct {
	sent     uint64
	ok       uint64
	toggled  uint64
	errCount uint64
	errCodes map[codes.Code]uint64
	mu       sync.Mutex
}

func (st *stats) fail(worker int, err error) {
	code := status.Code(err)
	atomic.AddUint64(&st.errCount, 1)
	st.mu.Lock()
	st.errCodes[code]++
	st.mu.Unlock()
	fmt.Printf("[W%d] error code=%s msg=%s\n", worker, code.String(), err.Error())
}

func main() {
	addr := flag.String("addr", "127.0.0.1:50051", "gRPC address")
	workers := flag.Int("workers", 4, "number of concurrent workers")
	count := flag.Int("count", 100, "total tasks to add")
	prefix := flag.String("prefix", "load task", "task text prefix")
	toggle := flag.Bool("toggle", false, "toggle every added task once")
	blankEvery := flag.Int("blank-every", 0, "send blank text every N requests (0 disables)")
	delay := flag.Duration("delay", 0, "delay between requests per worker (e.g. 10ms)")
	logEvery := flag.Int("log-every", 100, "log every N successes")
	verbose := flag.Bool("verbose", false, "log every request")
	checkDB := flag.Bool("check-db", false, "poll the journal table for task_added rows")
	poll := flag.Duration("poll", time.Second, "db poll interval (e.g. 200ms)")
	flag.Parse()

	if *workers <= 0 || *count <= 0 || *logEvery <= 0 {
		fmt.Println("usage: go run ./scripts/add_tasks.go [--addr 127.0.0.1:50051] [--workers 4] [--count 100] [--toggle] [--blank-every 0] [--delay 0ms] [--check-db] [--poll 1s]")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		cancel()
	}()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Printf("grpc dial failed: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	client := tasklistv1.NewTaskListServiceClient(conn)

	before, err := fetchView(ctx, client)
	if err != nil {
		fmt.Printf("initial view failed: %v\n", err)
		os.Exit(1)
	}

	var st stats
	st.errCodes = make(map[codes.Code]uint64)

	var watcher *dbWatcher
	if *checkDB {
		watcher, err = startDBWatcher(ctx, *poll)
		if err != nil {
			fmt.Printf("db watcher failed: %v\n", err)
			os.Exit(1)
		}
	}

	run := func(id int) {
		for {
			n := atomic.AddUint64(&st.sent, 1)
			if n > uint64(*count) {
				atomic.AddUint64(&st.sent, ^uint64(0))
				return
			}

			text := fmt.Sprintf("%s %d", *prefix, n)
			if *blankEvery > 0 && n%uint64(*blankEvery) == 0 {
				text = "   "
			}

			resp, err := client.AddTask(ctx, wrapperspb.String(text))
			if err != nil {
				st.fail(id, err)
			} else {
				ok := atomic.AddUint64(&st.ok, 1)
				if *verbose || (ok%uint64(*logEvery) == 0) {
					fmt.Printf("[W%d] ok id=%s\n", id, resp.GetFields()["id"].GetStringValue())
				}
				if *toggle {
					if _, err := client.ToggleTask(ctx, wrapperspb.String(resp.GetFields()["id"].GetStringValue())); err != nil {
						st.fail(id, err)
					} else {
						atomic.AddUint64(&st.toggled, 1)
					}
				}
			}

			if *delay > 0 {
				select {
				case <-time.After(*delay):
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ctx.Done():
				return
			default:
			}
		}
	}

	startedAt := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			run(id + 1)
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(startedAt)

	if watcher != nil {
		watcher.Stop()
	}

	st.mu.Lock()
	fmt.Printf("summary sent=%d ok=%d toggled=%d errors=%d error_codes=%v elapsed=%s\n", st.sent, st.ok, st.toggled, st.errCount, st.errCodes, elapsed)
	st.mu.Unlock()

	after, err := fetchView(context.Background(), client)
	if err != nil {
		fmt.Printf("final view failed: %v\n", err)
		os.Exit(1)
	}
	if err := verify(before, after, st.ok, st.toggled); err != nil {
		fmt.Printf("verify failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("verify ok visible=%d remaining=%d filter=%s\n", len(after.Tasks), after.RemainingCount, after.Filter)
}

// fetchView switches the server to the all filter so the visible list is
// the full list.
func fetchView(ctx context.Context, client tasklistv1.TaskListServiceClient) (entities.View, error) {
	if _, err := client.SetFilter(ctx, wrapperspb.String(entities.FilterAll.String())); err != nil {
		return entities.View{}, err
	}
	resp, err := client.GetView(ctx, &emptypb.Empty{})
	if err != nil {
		return entities.View{}, err
	}
	return mapper.ViewFromStruct(resp)
}

func verify(before, after entities.View, added, toggled uint64) error {
	if got, want := len(after.Tasks), len(before.Tasks)+int(added); got != want {
		return fmt.Errorf("task count: got %d, want %d", got, want)
	}
	if got, want := after.RemainingCount, before.RemainingCount+int(added)-int(toggled); got != want {
		return fmt.Errorf("remaining count: got %d, want %d", got, want)
	}
	seen := make(map[string]struct{}, len(after.Tasks))
	for _, task := range after.Tasks {
		if _, dup := seen[task.ID()]; dup {
			return errors.New("duplicate task id " + task.ID())
		}
		seen[task.ID()] = struct{}{}
	}
	return nil
}

type dbWatcher struct {
	pool      *pgxpool.Pool
	lastCount int
	changes   int
	cancel    context.CancelFunc
	done      chan struct{}
}

func startDBWatcher(ctx context.Context, poll time.Duration) (*dbWatcher, error) {
	pool, err := pgxpool.New(ctx, buildDSN())
	if err != nil {
		return nil, err
	}

	wctx, cancel := context.WithCancel(ctx)
	w := &dbWatcher{
		pool:   pool,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go w.loop(wctx, poll)
	return w, nil
}

func (w *dbWatcher) loop(ctx context.Context, poll time.Duration) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var n int
			err := w.pool.QueryRow(ctx,
				`SELECT COUNT(*) FROM task_events WHERE type = $1`,
				string(entities.EventTypeTaskAdded),
			).Scan(&n)
			if err != nil {
				continue
			}
			if n != w.lastCount {
				w.changes++
				fmt.Printf("db-watch change: task_added rows %d -> %d\n", w.lastCount, n)
			}
			w.lastCount = n
		}
	}
}

func (w *dbWatcher) Stop() {
	w.cancel()
	<-w.done
	w.pool.Close()
	fmt.Printf("db-watch summary task_added=%d changes=%d\n", w.lastCount, w.changes)
}

func buildDSN() string {
	db := getEnv("POSTGRES_DB", "task_list")
	user := getEnv("POSTGRES_USER", "task_list")
	pass := getEnv("POSTGRES_PASSWORD", "task_list")
	host := getEnv("POSTGRES_HOST", "localhost")
	port := getEnv("POSTGRES_PORT", "5432")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, port, db)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
