package ports

import (
	"context"

	"focusflow/internal/domain"
)

// StatsStore loads and saves the aggregated statistics
type StatsStore interface {
	// LoadStats returns the persisted snapshot, zero-valued when nothing
	// has been recorded yet
	LoadStats(ctx context.Context) (domain.StatsSnapshot, error)

	// SaveStats persists the snapshot
	SaveStats(ctx context.Context, snapshot domain.StatsSnapshot) error
}
