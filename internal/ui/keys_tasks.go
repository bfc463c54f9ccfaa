package ui

import "focusflow/internal/config"

// TaskKeys defines key bindings for task operations
type TaskKeys struct {
	Delete     KeyWithTip
	Edit       KeyWithTip
	New        KeyWithTip
	ToggleDone KeyWithTip
	Undo       KeyWithTip
}

// newTaskKeys creates task key bindings
func newTaskKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) TaskKeys {
	return TaskKeys{
		Delete:     buildBinding("delete_task", defaults, customKeys),
		Edit:       buildBinding("edit_task", defaults, customKeys),
		New:        buildBinding("new_task", defaults, customKeys),
		ToggleDone: buildBinding("toggle_done", defaults, customKeys),
		Undo:       buildBinding("undo_delete", defaults, customKeys),
	}
}
