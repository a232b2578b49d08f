package db_test

import (
	"context"
	"errors"
	"testing"

	"task-list/internal/core/ports"
	"task-list/internal/infrastructure/db"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeTx struct {
	pgx.Tx
	commits   int
	rollbacks int
	commitErr error
}

func (f *fakeTx) Commit(context.Context) error {
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rollbacks++
	return nil
}

type fakePool struct {
	tx       *fakeTx
	beginErr error
}

func (p *fakePool) Begin(context.Context) (pgx.Tx, error) {
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	return p.tx, nil
}

func newManager(t *testing.T, pool *fakePool) *db.UnitOfWorkManager {
	t.Helper()
	m, err := db.NewUnitOfWorkManager(pool, zaptest.NewLogger(t), func(q db.Querier) ports.Repositories {
		return ports.Repositories{}
	})
	require.NoError(t, err)
	return m
}

func TestNewUnitOfWorkManagerValidatesArguments(t *testing.T) {
	log := zaptest.NewLogger(t)
	factory := func(db.Querier) ports.Repositories { return ports.Repositories{} }

	_, err := db.NewUnitOfWorkManager(nil, log, factory)
	assert.Error(t, err)
	_, err = db.NewUnitOfWorkManager(&fakePool{}, nil, factory)
	assert.Error(t, err)
	_, err = db.NewUnitOfWorkManager(&fakePool{}, log, nil)
	assert.Error(t, err)
}

func TestDoCommitsOnSuccess(t *testing.T) {
	pool := &fakePool{tx: &fakeTx{}}
	m := newManager(t, pool)

	err := m.Do(context.Background(), func(ports.UnitOfWork) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, 1, pool.tx.commits)
	assert.Zero(t, pool.tx.rollbacks)
}

func TestDoRollsBackOnError(t *testing.T) {
	pool := &fakePool{tx: &fakeTx{}}
	m := newManager(t, pool)
	boom := errors.New("boom")

	err := m.Do(context.Background(), func(ports.UnitOfWork) error { return boom })

	require.ErrorIs(t, err, boom)
	assert.Zero(t, pool.tx.commits)
	assert.Equal(t, 1, pool.tx.rollbacks)
}

func TestDoRollsBackOnPanic(t *testing.T) {
	pool := &fakePool{tx: &fakeTx{}}
	m := newManager(t, pool)

	assert.Panics(t, func() {
		_ = m.Do(context.Background(), func(ports.UnitOfWork) error { panic("boom") })
	})
	assert.Equal(t, 1, pool.tx.rollbacks)
}

func TestDoReportsCommitFailure(t *testing.T) {
	pool := &fakePool{tx: &fakeTx{commitErr: errors.New("conn reset")}}
	m := newManager(t, pool)

	err := m.Do(context.Background(), func(ports.UnitOfWork) error { return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit transaction")
	assert.Zero(t, pool.tx.rollbacks)
}

func TestDoPropagatesBeginFailure(t *testing.T) {
	m := newManager(t, &fakePool{beginErr: errors.New("no conn")})
	called := false

	err := m.Do(context.Background(), func(ports.UnitOfWork) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}
