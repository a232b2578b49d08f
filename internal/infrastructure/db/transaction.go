package db

import (
	"context"
	"errors"
	"fmt"

	"task-list/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var errUnitOfWorkClosed = errors.New("unit of work already closed")

type RepoFactory func(q Querier) ports.Repositories

// TxBeginner is the part of *pgxpool.Pool the unit of work needs.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type UnitOfWorkManager struct {
	pool    TxBeginner
	log     *zap.Logger
	factory RepoFactory
}

func NewUnitOfWorkManager(pool TxBeginner, log *zap.Logger, factory RepoFactory) (*UnitOfWorkManager, error) {
	if pool == nil {
		return nil, errors.New("database pool is nil")
	}
	if log == nil {
		return nil, errors.New("logger is nil")
	}
	if factory == nil {
		return nil, errors.New("repository factory is nil")
	}
	return &UnitOfWorkManager{
		pool:    pool,
		log:     log,
		factory: factory,
	}, nil
}

func (m *UnitOfWorkManager) Begin(ctx context.Context) (ports.UnitOfWork, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	return &unitOfWork{
		tx:    tx,
		repos: m.factory(tx),
	}, nil
}

func (m *UnitOfWorkManager) Do(ctx context.Context, fn func(uow ports.UnitOfWork) error) (err error) {
	uow, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = uow.Rollback(ctx)
			panic(r)
		}
		if err != nil {
			if rbErr := uow.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, errUnitOfWorkClosed) {
				m.log.Warn("rollback failed", zap.Error(rbErr))
				err = fmt.Errorf("%w; rollback failed: %v", err, rbErr)
			}
		}
	}()

	if err = fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type unitOfWork struct {
	tx     pgx.Tx
	repos  ports.Repositories
	closed bool
}

func (u *unitOfWork) Repositories() ports.Repositories {
	return u.repos
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.closed {
		return errUnitOfWorkClosed
	}
	u.closed = true
	if err := u.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.closed {
		return errUnitOfWorkClosed
	}
	u.closed = true
	return u.tx.Rollback(ctx)
}
