package domain

import "time"

// Indicator classifies how the timer should be displayed. It is derived
// from (phase, elapsed, duration) and never stored.
type Indicator string

const (
	IndicatorBreak   Indicator = "break"
	IndicatorFocus   Indicator = "focus"
	IndicatorIdle    Indicator = "idle"
	IndicatorWarning Indicator = "warning"
)

// warningCap bounds the warning window for very long phases
const warningCap = time.Minute

// Indicator returns the display state for the current phase. The warning
// overlay wins once remaining time drops under 10% of the phase duration,
// capped at one minute. Paused phases keep the indicator of the phase
// they interrupted.
func (e *Engine) Indicator() Indicator {
	phase := e.effectivePhase()
	if phase == PhaseIdle {
		return IndicatorIdle
	}

	duration := e.config.DurationFor(phase)
	threshold := duration / 10
	if threshold > warningCap {
		threshold = warningCap
	}
	if duration-e.elapsed < threshold {
		return IndicatorWarning
	}

	if phase.IsBreak() {
		return IndicatorBreak
	}
	return IndicatorFocus
}
