package domain

import (
	"fmt"
	"time"
)

// Phase represents one state of the session timer
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseIdle       Phase = "idle"
	PhaseLongBreak  Phase = "long_break"
	PhasePaused     Phase = "paused"
	PhaseShortBreak Phase = "short_break"
)

// IsBreak reports whether the phase is one of the break phases
func (p Phase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

// Default timer configuration (standard Pomodoro cadence)
const (
	DefaultFocusDuration           = 25 * time.Minute
	DefaultShortBreakDuration      = 5 * time.Minute
	DefaultLongBreakDuration       = 30 * time.Minute
	DefaultSessionsBeforeLongBreak = 4
)

// TimerConfig holds the phase durations and long-break cadence
type TimerConfig struct {
	FocusDuration           time.Duration
	LongBreakDuration       time.Duration
	SessionsBeforeLongBreak int
	ShortBreakDuration      time.Duration
}

// DefaultTimerConfig returns the standard 25/5/30 configuration
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		FocusDuration:           DefaultFocusDuration,
		LongBreakDuration:       DefaultLongBreakDuration,
		SessionsBeforeLongBreak: DefaultSessionsBeforeLongBreak,
		ShortBreakDuration:      DefaultShortBreakDuration,
	}
}

// Validate checks that all durations are positive and the cadence is at least 1
func (c TimerConfig) Validate() error {
	if c.FocusDuration <= 0 {
		return fmt.Errorf("%w: focus duration must be positive", ErrInvalidConfig)
	}
	if c.ShortBreakDuration <= 0 {
		return fmt.Errorf("%w: short break duration must be positive", ErrInvalidConfig)
	}
	if c.LongBreakDuration <= 0 {
		return fmt.Errorf("%w: long break duration must be positive", ErrInvalidConfig)
	}
	if c.SessionsBeforeLongBreak < 1 {
		return fmt.Errorf("%w: sessions before long break must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// DurationFor returns the configured duration of a runnable phase.
// Idle and Paused have no duration and return zero.
func (c TimerConfig) DurationFor(phase Phase) time.Duration {
	switch phase {
	case PhaseFocus:
		return c.FocusDuration
	case PhaseShortBreak:
		return c.ShortBreakDuration
	case PhaseLongBreak:
		return c.LongBreakDuration
	default:
		return 0
	}
}

// PhaseCompletion describes a finished phase and the phase entered next.
// FocusSessions carries the completed session count after the transition.
type PhaseCompletion struct {
	Completed     Phase
	Duration      time.Duration
	FocusSessions int
	Next          Phase
}

// Engine is the session timer state machine. It is purely reactive: time
// only advances through Tick, so callers control the clock. All methods
// must be called from a single goroutine.
type Engine struct {
	completedSessions int
	config            TimerConfig
	elapsed           time.Duration
	pending           *TimerConfig
	phase             Phase
	resumePhase       Phase
}

// NewEngine creates an idle engine with the given configuration.
// The configuration must already be validated.
func NewEngine(config TimerConfig) *Engine {
	return &Engine{
		config: config,
		phase:  PhaseIdle,
	}
}

// Phase returns the current phase
func (e *Engine) Phase() Phase { return e.phase }

// Elapsed returns the time spent in the current phase.
// For Paused it is the frozen elapsed value of the interrupted phase.
func (e *Engine) Elapsed() time.Duration { return e.elapsed }

// CompletedSessions returns the number of focus sessions completed
func (e *Engine) CompletedSessions() int { return e.completedSessions }

// Config returns the active configuration. A staged configuration is not
// visible here until the next phase entry applies it.
func (e *Engine) Config() TimerConfig { return e.config }

// Running reports whether a phase is actively ticking
func (e *Engine) Running() bool {
	return e.phase == PhaseFocus || e.phase.IsBreak()
}

// Remaining returns the time left in the current phase. For Paused it
// reports against the interrupted phase; for Idle it reports the full
// focus duration that a Start would begin.
func (e *Engine) Remaining() time.Duration {
	phase := e.effectivePhase()
	if phase == PhaseIdle {
		return e.config.FocusDuration
	}
	remaining := e.config.DurationFor(phase) - e.elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// effectivePhase resolves Paused to the phase it interrupted
func (e *Engine) effectivePhase() Phase {
	if e.phase == PhasePaused {
		return e.resumePhase
	}
	return e.phase
}

// Start begins a focus phase from Idle. It reports whether the timer
// started; calling it while running or paused is a silent no-op.
func (e *Engine) Start() bool {
	if e.phase != PhaseIdle {
		return false
	}
	e.enterPhase(PhaseFocus)
	return true
}

// Pause freezes the current running phase. No-op from Idle or Paused.
func (e *Engine) Pause() {
	if !e.Running() {
		return
	}
	e.resumePhase = e.phase
	e.phase = PhasePaused
}

// Resume continues the interrupted phase with its elapsed time intact
func (e *Engine) Resume() {
	if e.phase != PhasePaused {
		return
	}
	e.phase = e.resumePhase
	e.resumePhase = ""
}

// Stop resets the engine to Idle. The completed session count is kept.
func (e *Engine) Stop() {
	e.applyPending()
	e.phase = PhaseIdle
	e.resumePhase = ""
	e.elapsed = 0
}

// SetConfig stages a new configuration. It takes effect at the next phase
// entry rather than retroactively on the running phase, so a mid-phase
// change can never make elapsed exceed the phase duration.
func (e *Engine) SetConfig(config TimerConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if !e.Running() && e.phase != PhasePaused {
		e.config = config
		e.pending = nil
		return nil
	}
	staged := config
	e.pending = &staged
	return nil
}

// applyPending makes a staged configuration active
func (e *Engine) applyPending() {
	if e.pending != nil {
		e.config = *e.pending
		e.pending = nil
	}
}

// enterPhase transitions into a phase, applying any staged configuration
func (e *Engine) enterPhase(phase Phase) {
	e.applyPending()
	e.phase = phase
	e.resumePhase = ""
	e.elapsed = 0
}

// Tick advances the running phase by delta. When the phase duration is
// reached the engine auto-advances: Focus moves to a break (the long
// break every SessionsBeforeLongBreak completions), and a break returns
// to Idle awaiting a manual Start. A delta larger than the remaining
// time completes exactly one phase; the surplus is discarded.
func (e *Engine) Tick(delta time.Duration) (PhaseCompletion, bool) {
	if !e.Running() || delta <= 0 {
		return PhaseCompletion{}, false
	}

	e.elapsed += delta
	duration := e.config.DurationFor(e.phase)
	if e.elapsed < duration {
		return PhaseCompletion{}, false
	}

	completed := e.phase
	var next Phase
	if completed == PhaseFocus {
		e.completedSessions++
		if e.completedSessions%e.config.SessionsBeforeLongBreak == 0 {
			next = PhaseLongBreak
		} else {
			next = PhaseShortBreak
		}
	} else {
		next = PhaseIdle
	}
	e.enterPhase(next)

	return PhaseCompletion{
		Completed:     completed,
		Duration:      duration,
		FocusSessions: e.completedSessions,
		Next:          next,
	}, true
}
