package cmd

import (
	adaptersound "focusflow/internal/adapters/sound"
)

// PlaySoundCmd plays a notification sound
type PlaySoundCmd struct {
	Event string `help:"Event to play the sound for" enum:"focus_complete,break_complete,session_start" default:"focus_complete"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	return adaptersound.NewPlayer().PlaySoundForEvent(p.Event)
}
