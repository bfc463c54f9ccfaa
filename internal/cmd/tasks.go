package cmd

// TasksCmd manages tasks
type TasksCmd struct {
	Add  TasksAddCmd  `cmd:"add" help:"Add a new task"`
	Del  TasksDelCmd  `cmd:"del" help:"Delete a task (undoable until the next delete)"`
	Done TasksDoneCmd `cmd:"done" help:"Toggle a task's completion"`
	Edit TasksEditCmd `cmd:"edit" help:"Edit a task's text or points"`
	List TasksListCmd `cmd:"list" help:"List all tasks" default:"1"`
	Move TasksMoveCmd `cmd:"move" aliases:"mv" help:"Move a task to a new position"`
	Undo TasksUndoCmd `cmd:"undo" help:"Restore the most recently deleted task"`
}
