package exceptions

import "errors"

var (
	ErrEventNil             = errors.New("event is nil")
	ErrEventIDRequired      = errors.New("event id is required")
	ErrEventSessionRequired = errors.New("event session id is required")
	ErrUnsupportedEventType = errors.New("unsupported event type")
)
