package grpc

import (
	"context"
	"errors"

	"task-list/internal/core/domain/entities"
	"task-list/internal/core/ports"
	"task-list/internal/mapper"
	tasklistv1 "task-list/pkg/grpc/tasklist/v1"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type TaskListServer struct {
	tasklistv1.UnimplementedTaskListServiceServer
	service ports.TaskListUseCases
	log     *zap.Logger
}

func NewTaskListServer(service ports.TaskListUseCases, log *zap.Logger) (*TaskListServer, error) {
	if service == nil {
		return nil, errors.New("task list service is nil")
	}
	if log == nil {
		return nil, errors.New("logger is nil")
	}
	return &TaskListServer{
		service: service,
		log:     log,
	}, nil
}

func (s *TaskListServer) AddTask(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	s.log.Debug("grpc: add task", zap.Int("text_len", len(req.GetValue())))

	task, err := s.service.AddTask(req.GetValue())
	if err != nil {
		s.log.Warn("grpc: add task failed", zap.Error(err))
		return nil, mapper.Error(err)
	}

	s.log.Info("grpc: add task done", zap.String("task_id", task.ID()))
	return mapper.Task(task), nil
}

func (s *TaskListServer) ToggleTask(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	s.log.Debug("grpc: toggle task", zap.String("task_id", req.GetValue()))
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "task id is required")
	}

	if err := s.service.ToggleTask(req.GetValue()); err != nil {
		s.log.Warn("grpc: toggle task failed", zap.String("task_id", req.GetValue()), zap.Error(err))
		return nil, mapper.Error(err)
	}

	s.log.Info("grpc: toggle task done", zap.String("task_id", req.GetValue()))
	return &emptypb.Empty{}, nil
}

func (s *TaskListServer) DeleteTask(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	s.log.Debug("grpc: delete task", zap.String("task_id", req.GetValue()))
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "task id is required")
	}

	if err := s.service.DeleteTask(req.GetValue()); err != nil {
		s.log.Warn("grpc: delete task failed", zap.String("task_id", req.GetValue()), zap.Error(err))
		return nil, mapper.Error(err)
	}

	s.log.Info("grpc: delete task done", zap.String("task_id", req.GetValue()))
	return &emptypb.Empty{}, nil
}

func (s *TaskListServer) SetFilter(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	s.log.Debug("grpc: set filter", zap.String("filter", req.GetValue()))

	filter, err := entities.ParseFilter(req.GetValue())
	if err != nil {
		s.log.Warn("grpc: set filter validation failed", zap.Error(err))
		return nil, mapper.Error(err)
	}

	s.service.SetFilter(filter)
	s.log.Info("grpc: set filter done", zap.Stringer("filter", filter))
	return &emptypb.Empty{}, nil
}

func (s *TaskListServer) GetView(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	view := s.service.View()
	s.log.Debug("grpc: get view done", zap.Int("visible", len(view.Tasks)), zap.Int("remaining", view.RemainingCount))
	return mapper.View(view), nil
}

func (s *TaskListServer) WatchView(_ *emptypb.Empty, stream tasklistv1.TaskListService_WatchViewServer) error {
	watchID := nextWatchID()
	remote := peerAddr(stream.Context())
	s.log.Info("grpc: watch view started", zap.Uint64("watch_id", watchID), zap.String("remote", remote))

	sent, err := s.pumpViews(stream, s.service.Watch(stream.Context()))
	return s.finishWatch(err, sent, watchID, remote)
}
