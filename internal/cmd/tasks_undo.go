package cmd

import (
	"context"
	"errors"
	"fmt"

	"focusflow/internal/domain"
)

// TasksUndoCmd restores the most recently deleted task
type TasksUndoCmd struct{}

// Run executes the undo command. An empty undo buffer is a no-op, not
// an error.
func (t *TasksUndoCmd) Run(cli *CLI) error {
	task, err := cli.Container.TaskService.UndoDelete(context.Background())
	if errors.Is(err, domain.ErrNothingToUndo) {
		fmt.Println("Nothing to undo")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to undo delete: %w", err)
	}

	fmt.Printf("Task #%d restored\n", task.ID)
	return nil
}
