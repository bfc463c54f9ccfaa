package ports

import (
	"context"

	"focusflow/internal/domain"
)

// SnapshotStore reads and writes the JSON interchange documents (task
// list, stats, timer config) used for import and export
type SnapshotStore interface {
	LoadTasks(ctx context.Context) ([]domain.Task, error)
	SaveTasks(ctx context.Context, tasks []domain.Task) error

	LoadStats(ctx context.Context) (domain.StatsSnapshot, error)
	SaveStats(ctx context.Context, snapshot domain.StatsSnapshot) error

	LoadTimerConfig(ctx context.Context) (domain.TimerConfig, bool, error)
	SaveTimerConfig(ctx context.Context, config domain.TimerConfig) error
}
