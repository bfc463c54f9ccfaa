package domain

import "errors"

var (
	ErrEmptyTaskText = errors.New("task text is empty")
	ErrInvalidConfig = errors.New("invalid timer configuration")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrTaskNotFound  = errors.New("task not found")
)
