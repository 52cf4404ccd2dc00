package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrNoWeekdays      = errors.New("select at least one weekday")
	ErrInvalidTemplate = errors.New("invalid task template")
	ErrInvalidFilter   = errors.New("unknown filter")
	ErrInvalidDate     = errors.New("invalid date")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidImport   = errors.New("invalid import data")
)
