package exceptions

import "errors"

var (
	ErrEmptyText       = errors.New("task text is empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrDuplicateTaskID = errors.New("task id already issued")
	ErrInvalidFilter   = errors.New("invalid filter")
)
