package cmd

import (
	"context"
	"fmt"
)

// TasksDelCmd deletes a task
type TasksDelCmd struct {
	ID int `arg:"" help:"ID of the task to delete"`
}

// Run executes the del command
func (t *TasksDelCmd) Run(cli *CLI) error {
	task, err := cli.Container.TaskService.Delete(context.Background(), t.ID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("Task #%d deleted ('focusflow tasks undo' restores it)\n", task.ID)
	return nil
}
