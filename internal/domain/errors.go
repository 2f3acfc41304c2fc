package domain

import "errors"

// Domain errors.
var (
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrInvalidPriorityFilter = errors.New("invalid priority filter")
	ErrInvalidDeadline       = errors.New("invalid deadline")
	ErrConfigExists          = errors.New("config file already exists")
)
