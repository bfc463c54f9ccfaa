package cmd

import (
	"context"
	"fmt"
)

// TasksAddCmd adds a new task
type TasksAddCmd struct {
	Points int    `help:"Signed point value scored on completion" default:"0"`
	Text   string `arg:"" help:"Task text"`
}

// Run executes the add command
func (t *TasksAddCmd) Run(cli *CLI) error {
	task, err := cli.Container.TaskService.Add(context.Background(), t.Text, t.Points)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	fmt.Printf("Task #%d added\n", task.ID)
	return nil
}
