package ui

// Action messages emitted by components and dispatched by Model.
// Each message type represents one user-requested action.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowStatsMsg requests showing the statistics screen
type ShowStatsMsg struct{}

// ShowConfigMsg requests showing the timer configuration form
type ShowConfigMsg struct{}

// ToggleTimerMsg requests starting, pausing, or resuming the timer
// depending on the current phase
type ToggleTimerMsg struct{}

// StopTimerMsg requests resetting the timer back to idle
type StopTimerMsg struct{}

// NewTaskMsg requests showing the task creation form
type NewTaskMsg struct{}

// EditTaskMsg requests showing the task edit form
type EditTaskMsg struct {
	TaskID int
}

// ToggleTaskMsg requests flipping a task's completion state
type ToggleTaskMsg struct {
	TaskID int
}

// DeleteTaskMsg requests deleting a task (undoable)
type DeleteTaskMsg struct {
	TaskID int
}

// UndoDeleteMsg requests restoring the most recently deleted task
type UndoDeleteMsg struct{}

// MoveTaskMsg requests moving a task to a new display position
type MoveTaskMsg struct {
	NewIndex int
	TaskID   int
}
