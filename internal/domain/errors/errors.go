package errors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrOutOfRange        = errors.New("index out of range")
	ErrMissingContact    = errors.New("name and email are required")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidCoordinate = errors.New("invalid upload coordinate")
	ErrMissingFile       = errors.New("missing file")
)
