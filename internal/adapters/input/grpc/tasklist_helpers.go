package grpc

import (
	"context"
	"errors"
	"sync/atomic"

	"task-list/internal/core/domain/entities"
	"task-list/internal/mapper"
	tasklistv1 "task-list/pkg/grpc/tasklist/v1"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

var watchSeq atomic.Uint64

func nextWatchID() uint64 {
	return watchSeq.Add(1)
}

func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown"
}

// pumpViews forwards views until the channel closes, which happens when the
// stream context ends.
func (s *TaskListServer) pumpViews(stream tasklistv1.TaskListService_WatchViewServer, views <-chan entities.View) (int, error) {
	sent := 0
	for view := range views {
		if err := stream.Send(mapper.View(view)); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, stream.Context().Err()
}

func (s *TaskListServer) finishWatch(err error, sent int, watchID uint64, remote string) error {
	fields := []zap.Field{
		zap.Uint64("watch_id", watchID),
		zap.String("remote", remote),
		zap.Int("views_sent", sent),
	}

	switch {
	case err == nil,
		errors.Is(err, context.Canceled):
		s.log.Info("grpc: watch view done", fields...)
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		s.log.Info("grpc: watch view deadline exceeded", fields...)
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		fields = append(fields, zap.Error(err))
		s.log.Warn("grpc: watch view send failed", fields...)
		return err
	}
}
