package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"focusflow/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Tasks       TaskKeys
	Timer       TimerKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Navigation:  newNavigationKeys(defaults, keysConfig),
		Tasks:       newTaskKeys(defaults, keysConfig),
		Timer:       newTimerKeys(defaults, keysConfig),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Timer.StartPause.Binding,
		k.Tasks.New.Binding,
		k.Tasks.ToggleDone.Binding,
		k.Tasks.Delete.Binding,
		k.Application.Stats.Binding,
		k.Application.Config.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}
