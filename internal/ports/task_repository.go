package ports

import (
	"context"

	"focusflow/internal/domain"
)

// TaskReader loads the persisted task list
type TaskReader interface {
	// LoadTasks returns all tasks in display order
	LoadTasks(ctx context.Context) ([]domain.Task, error)
}

// TaskWriter persists the task list
type TaskWriter interface {
	// SaveTasks replaces the stored list with the given one; slice order
	// becomes the stored display order
	SaveTasks(ctx context.Context, tasks []domain.Task) error
}

// UndoStore persists the single-slot undo buffer so a deleted task can
// be restored by a later process
type UndoStore interface {
	// LoadUndo returns the buffered deletion. The boolean is false when
	// the buffer is empty.
	LoadUndo(ctx context.Context) (domain.UndoEntry, bool, error)

	// SaveUndo replaces the buffered deletion; nil clears the buffer
	SaveUndo(ctx context.Context, entry *domain.UndoEntry) error
}

// TaskStore combines task reading and writing with the undo buffer
type TaskStore interface {
	TaskReader
	TaskWriter
	UndoStore
}
