package cmd

import "fmt"

// TasksListCmd lists all tasks in display order
type TasksListCmd struct{}

// Run executes the list command
func (t *TasksListCmd) Run(cli *CLI) error {
	tasks := cli.Container.TaskService.List()
	if len(tasks) == 0 {
		fmt.Println("No tasks")
		return nil
	}

	for i, task := range tasks {
		checkbox := "[ ]"
		if task.Completed {
			checkbox = "[x]"
		}
		fmt.Printf("%2d. %s %s (%+d) #%d\n", i+1, checkbox, task.Text, task.Points, task.ID)
	}
	return nil
}
