package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"focusflow/internal/domain"
	"focusflow/internal/logging"
	"focusflow/internal/ports"
)

// StateRepositoryFactory creates state repositories for a given
// FOCUSFLOW_HOME path
type StateRepositoryFactory func(homePath string) (ports.StateRepository, error)

// MigrationService moves state between the JSON interchange documents
// and the database. Import seeds the database from the documents;
// Export writes the current database contents back out as documents.
type MigrationService struct {
	repoFactory StateRepositoryFactory
	snapshots   ports.SnapshotStore
}

// NewMigrationService creates a new MigrationService
func NewMigrationService(snapshots ports.SnapshotStore, repoFactory StateRepositoryFactory) *MigrationService {
	return &MigrationService{
		repoFactory: repoFactory,
		snapshots:   snapshots,
	}
}

// ImportResult summarizes an import
type ImportResult struct {
	ConfigImported bool
	DailyStatDays  int
	TaskCount      int
}

// Import loads the three documents concurrently and writes them into
// the database at homePath. Missing documents import as empty state;
// the database contents for each document kind are replaced.
func (s *MigrationService) Import(ctx context.Context, homePath string) (*ImportResult, error) {
	logging.Logger.Info("Importing documents", "home", homePath)

	var (
		config      domain.TimerConfig
		configFound bool
		stats       domain.StatsSnapshot
		tasks       []domain.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.snapshots.LoadTasks(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.snapshots.LoadStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		config, configFound, err = s.snapshots.LoadTimerConfig(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logging.Logger.Error("Failed to load documents", "error", err)
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	repo, err := s.repoFactory(homePath)
	if err != nil {
		logging.Logger.Error("Failed to open database", "home", homePath, "error", err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	if err := repo.SaveTasks(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to import tasks: %w", err)
	}
	if err := repo.SaveStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("failed to import stats: %w", err)
	}
	if configFound {
		if err := repo.SaveTimerConfig(ctx, config); err != nil {
			return nil, fmt.Errorf("failed to import timer config: %w", err)
		}
	}

	result := &ImportResult{
		ConfigImported: configFound,
		DailyStatDays:  len(stats.Daily),
		TaskCount:      len(tasks),
	}
	logging.Logger.Info("Import finished",
		"tasks", result.TaskCount,
		"daily_stat_days", result.DailyStatDays,
		"config_imported", result.ConfigImported)
	return result, nil
}

// Export writes the database contents at homePath out as the three
// documents, concurrently
func (s *MigrationService) Export(ctx context.Context, homePath string) error {
	logging.Logger.Info("Exporting documents", "home", homePath)

	repo, err := s.repoFactory(homePath)
	if err != nil {
		logging.Logger.Error("Failed to open database", "home", homePath, "error", err)
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	tasks, err := repo.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	stats, err := repo.LoadStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	config, configFound, err := repo.LoadTimerConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load timer config: %w", err)
	}
	if !configFound {
		config = domain.DefaultTimerConfig()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.snapshots.SaveTasks(gctx, tasks) })
	g.Go(func() error { return s.snapshots.SaveStats(gctx, stats) })
	g.Go(func() error { return s.snapshots.SaveTimerConfig(gctx, config) })
	if err := g.Wait(); err != nil {
		logging.Logger.Error("Failed to write documents", "error", err)
		return fmt.Errorf("failed to write documents: %w", err)
	}

	logging.Logger.Info("Export finished", "tasks", len(tasks), "daily_stat_days", len(stats.Daily))
	return nil
}
