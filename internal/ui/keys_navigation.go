package ui

import "focusflow/internal/config"

// NavigationKeys defines key bindings for moving through the task list
type NavigationKeys struct {
	Down     KeyWithTip
	MoveDown KeyWithTip
	MoveUp   KeyWithTip
	Up       KeyWithTip
}

// newNavigationKeys creates navigation key bindings
func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Down:     buildBinding("down", defaults, customKeys),
		MoveDown: buildBinding("move_down", defaults, customKeys),
		MoveUp:   buildBinding("move_up", defaults, customKeys),
		Up:       buildBinding("up", defaults, customKeys),
	}
}
