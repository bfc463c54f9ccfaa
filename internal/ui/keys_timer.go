package ui

import "focusflow/internal/config"

// TimerKeys defines key bindings for timer control
type TimerKeys struct {
	StartPause KeyWithTip
	Stop       KeyWithTip
}

// newTimerKeys creates timer key bindings
func newTimerKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) TimerKeys {
	return TimerKeys{
		StartPause: buildBinding("start_pause", defaults, customKeys),
		Stop:       buildBinding("stop_timer", defaults, customKeys),
	}
}
