package domain

// Task is a single item on the ordered task list (domain entity).
// IDs are assigned by the TaskList at creation and never reused.
type Task struct {
	Completed bool
	ID        int
	Points    int
	Text      string
}

// ScoreDelta is the signed point change emitted when a task's completion
// flag flips. Completing emits +Points, un-completing emits -Points, so a
// double toggle nets zero.
type ScoreDelta struct {
	Completing bool
	Points     int
	TaskID     int
}

// UndoEntry is the snapshot of the most recently deleted task together
// with the index it occupied. The undo buffer holds at most one entry.
type UndoEntry struct {
	Index int
	Task  Task
}
