package ports

import (
	"context"

	"focusflow/internal/domain"
)

// TimerConfigStore loads and saves the timer configuration
type TimerConfigStore interface {
	// LoadTimerConfig returns the stored configuration. The boolean is
	// false when none has been saved yet and callers should fall back to
	// the defaults.
	LoadTimerConfig(ctx context.Context) (domain.TimerConfig, bool, error)

	// SaveTimerConfig persists the configuration
	SaveTimerConfig(ctx context.Context, config domain.TimerConfig) error
}
