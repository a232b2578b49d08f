package mapper

import (
	"errors"
	"fmt"

	"task-list/internal/core/domain/entities"
	"task-list/internal/core/domain/exceptions"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	fieldID             = "id"
	fieldText           = "text"
	fieldCompleted      = "completed"
	fieldTasks          = "tasks"
	fieldRemainingCount = "remaining_count"
	fieldFilter         = "filter"
)

var errMalformed = errors.New("malformed message")

func Task(task entities.Task) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldID:        structpb.NewStringValue(task.ID()),
			fieldText:      structpb.NewStringValue(task.Text()),
			fieldCompleted: structpb.NewBoolValue(task.Completed()),
		},
	}
}

func View(view entities.View) *structpb.Struct {
	tasks := make([]*structpb.Value, 0, len(view.Tasks))
	for _, task := range view.Tasks {
		tasks = append(tasks, structpb.NewStructValue(Task(task)))
	}
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldTasks:          structpb.NewListValue(&structpb.ListValue{Values: tasks}),
			fieldRemainingCount: structpb.NewNumberValue(float64(view.RemainingCount)),
			fieldFilter:         structpb.NewStringValue(view.Filter.String()),
		},
	}
}

// TaskFromStruct is the inverse of Task, used by clients.
func TaskFromStruct(s *structpb.Struct) (entities.Task, error) {
	fields := s.GetFields()
	id, ok := fields[fieldID].GetKind().(*structpb.Value_StringValue)
	if !ok || id.StringValue == "" {
		return entities.Task{}, fmt.Errorf("%w: task id missing", errMalformed)
	}
	text, ok := fields[fieldText].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return entities.Task{}, fmt.Errorf("%w: task text missing", errMalformed)
	}
	return entities.NewTask(id.StringValue, text.StringValue, fields[fieldCompleted].GetBoolValue()), nil
}

// ViewFromStruct is the inverse of View, used by clients.
func ViewFromStruct(s *structpb.Struct) (entities.View, error) {
	fields := s.GetFields()
	list, ok := fields[fieldTasks].GetKind().(*structpb.Value_ListValue)
	if !ok {
		return entities.View{}, fmt.Errorf("%w: view tasks missing", errMalformed)
	}

	tasks := make([]entities.Task, 0, len(list.ListValue.GetValues()))
	for _, v := range list.ListValue.GetValues() {
		task, err := TaskFromStruct(v.GetStructValue())
		if err != nil {
			return entities.View{}, err
		}
		tasks = append(tasks, task)
	}

	return entities.View{
		Tasks:          tasks,
		RemainingCount: int(fields[fieldRemainingCount].GetNumberValue()),
		Filter:         entities.Filter(fields[fieldFilter].GetStringValue()),
	}, nil
}

func Error(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, exceptions.ErrTaskNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, exceptions.ErrEmptyText),
		errors.Is(err, exceptions.ErrInvalidFilter):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, exceptions.ErrDuplicateTaskID):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
