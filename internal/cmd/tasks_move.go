package cmd

import (
	"context"
	"fmt"
)

// TasksMoveCmd moves a task to a new display position
type TasksMoveCmd struct {
	ID       int `arg:"" help:"ID of the task to move"`
	Position int `arg:"" help:"New 1-based position"`
}

// Run executes the move command
func (t *TasksMoveCmd) Run(cli *CLI) error {
	if t.Position < 1 {
		return fmt.Errorf("position must be 1 or greater")
	}

	if err := cli.Container.TaskService.Reorder(context.Background(), t.ID, t.Position-1); err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}

	fmt.Printf("Task #%d moved to position %d\n", t.ID, t.Position)
	return nil
}
