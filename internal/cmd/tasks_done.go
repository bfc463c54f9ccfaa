package cmd

import (
	"context"
	"fmt"
)

// TasksDoneCmd toggles a task's completion state
type TasksDoneCmd struct {
	ID int `arg:"" help:"ID of the task to toggle"`
}

// Run executes the done command
func (t *TasksDoneCmd) Run(cli *CLI) error {
	task, err := cli.Container.TaskService.Toggle(context.Background(), t.ID)
	if err != nil {
		return fmt.Errorf("failed to toggle task: %w", err)
	}

	if task.Completed {
		fmt.Printf("Task #%d completed (%+d points)\n", task.ID, task.Points)
	} else {
		fmt.Printf("Task #%d reopened (%+d points reversed)\n", task.ID, task.Points)
	}
	return nil
}
