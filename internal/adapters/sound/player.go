package sound

import "fmt"

// Event types with distinct sounds
const (
	EventBreakComplete = "break_complete"
	EventFocusComplete = "focus_complete"
	EventSessionStart  = "session_start"
)

// Player implements ports.SoundPlayer
type Player struct{}

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlaySound plays a cross-platform notification sound (default)
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(EventFocusComplete)
}

// PlaySoundForEvent plays different sounds based on the event type.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	return playForEvent(eventType)
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
