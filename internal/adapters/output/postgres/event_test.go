package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-list/internal/adapters/output/postgres"
	"task-list/internal/core/domain/entities"
	"task-list/internal/core/domain/exceptions"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type execCall struct {
	sql  string
	args []any
}

type countRow struct {
	n   int
	err error
}

func (r countRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.n
	return nil
}

type fakeQuerier struct {
	execs   []execCall
	execErr error
	tag     pgconn.CommandTag
	row     pgx.Row
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.execs = append(q.execs, execCall{sql: sql, args: args})
	return q.tag, q.execErr
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (q *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return q.row
}

func TestNewEventRepositoryValidatesArguments(t *testing.T) {
	_, err := postgres.NewEventRepository(nil, zaptest.NewLogger(t))
	assert.Error(t, err)
	_, err = postgres.NewEventRepository(&fakeQuerier{}, nil)
	assert.Error(t, err)
}

func TestAppendWritesEventColumns(t *testing.T) {
	q := &fakeQuerier{}
	repo, err := postgres.NewEventRepository(q, zaptest.NewLogger(t))
	require.NoError(t, err)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := entities.NewTaskEvent("e1", "s1", entities.EventTypeTaskAdded, entities.NewTask("t1", "milk", false), at)

	require.NoError(t, repo.Append(context.Background(), event))

	require.Len(t, q.execs, 1)
	assert.Contains(t, q.execs[0].sql, "INSERT INTO task_events")
	assert.Contains(t, q.execs[0].sql, "ON CONFLICT (event_id) DO NOTHING")
	args := q.execs[0].args
	require.Len(t, args, 6)
	assert.Equal(t, "e1", args[0])
	assert.Equal(t, "s1", args[1])
	assert.Equal(t, "task_added", args[2])
	assert.Equal(t, "t1", args[3])
	assert.JSONEq(t, `{"text":"milk","completed":false}`, string(args[4].([]byte)))
	assert.Equal(t, at, args[5])
}

func TestAppendLetsDatabaseStampZeroTime(t *testing.T) {
	q := &fakeQuerier{}
	repo, err := postgres.NewEventRepository(q, zaptest.NewLogger(t))
	require.NoError(t, err)

	event := entities.NewFilterEvent("e1", "s1", entities.FilterActive, time.Time{})
	require.NoError(t, repo.Append(context.Background(), event))

	require.Len(t, q.execs, 1)
	assert.Nil(t, q.execs[0].args[5])
	assert.Equal(t, "", q.execs[0].args[3])
}

func TestAppendRejectsInvalidEvents(t *testing.T) {
	q := &fakeQuerier{}
	repo, err := postgres.NewEventRepository(q, zaptest.NewLogger(t))
	require.NoError(t, err)

	err = repo.Append(context.Background(), &entities.TaskEvent{EventID: "e1", Type: entities.EventTypeTaskAdded})

	require.ErrorIs(t, err, exceptions.ErrEventSessionRequired)
	assert.Empty(t, q.execs)
}

func TestAppendPropagatesExecError(t *testing.T) {
	q := &fakeQuerier{execErr: errors.New("unique violation")}
	repo, err := postgres.NewEventRepository(q, zaptest.NewLogger(t))
	require.NoError(t, err)

	event := entities.NewFilterEvent("e1", "s1", entities.FilterAll, time.Now())
	assert.EqualError(t, repo.Append(context.Background(), event), "unique violation")
}

func TestCountByType(t *testing.T) {
	q := &fakeQuerier{row: countRow{n: 7}}
	repo, err := postgres.NewEventRepository(q, zaptest.NewLogger(t))
	require.NoError(t, err)

	n, err := repo.CountByType(context.Background(), "s1", entities.EventTypeTaskAdded)

	require.NoError(t, err)
	assert.Equal(t, 7, n)

	q.row = countRow{err: pgx.ErrNoRows}
	_, err = repo.CountByType(context.Background(), "s1", entities.EventTypeTaskAdded)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestDeleteSessionReportsRowsAffected(t *testing.T) {
	q := &fakeQuerier{tag: pgconn.NewCommandTag("DELETE 3")}
	repo, err := postgres.NewEventRepository(q, zaptest.NewLogger(t))
	require.NoError(t, err)

	n, err := repo.DeleteSession(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, []any{"s1"}, q.execs[0].args)
}
