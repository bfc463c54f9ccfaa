package cmd

import (
	"context"
	"fmt"
)

// TasksEditCmd edits a task's text or points
type TasksEditCmd struct {
	ID     int     `arg:"" help:"ID of the task to edit"`
	Points *int    `help:"New point value"`
	Text   *string `help:"New task text"`
}

// Run executes the edit command
func (t *TasksEditCmd) Run(cli *CLI) error {
	if t.Text == nil && t.Points == nil {
		return fmt.Errorf("nothing to change: pass --text and/or --points")
	}

	task, err := cli.Container.TaskService.Edit(context.Background(), t.ID, t.Text, t.Points)
	if err != nil {
		return fmt.Errorf("failed to edit task: %w", err)
	}

	fmt.Printf("Task #%d updated\n", task.ID)
	return nil
}
