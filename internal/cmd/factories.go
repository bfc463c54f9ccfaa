package cmd

import (
	"context"

	adaptersound "focusflow/internal/adapters/sound"
	"focusflow/internal/adapters/snapshot"
	adapterstorage "focusflow/internal/adapters/storage"
	"focusflow/internal/config"
	"focusflow/internal/ports"
	"focusflow/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	MigrationService *services.MigrationService
	SettingsService  *services.SettingsService
	StatsService     *services.StatsService
	TaskService      *services.TaskService
	TimerService     *services.TimerService

	// Internal - for cleanup only
	stateRepo ports.StateRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	ctx := context.Background()

	stateRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	settingsService := services.NewSettingsService()

	// Sound can be disabled in settings.json; a nil player mutes the timer
	var soundPlayer ports.SoundPlayer
	if settingsService.SoundEnabled() {
		soundPlayer = adaptersound.NewPlayer()
	}

	statsService, err := services.NewStatsService(ctx, stateRepo, ports.SystemClock())
	if err != nil {
		stateRepo.Close()
		return nil, err
	}
	timerService, err := services.NewTimerService(ctx, stateRepo, statsService, soundPlayer)
	if err != nil {
		stateRepo.Close()
		return nil, err
	}
	taskService, err := services.NewTaskService(ctx, stateRepo, statsService)
	if err != nil {
		stateRepo.Close()
		return nil, err
	}

	// The migration service opens its own databases per home path
	snapshots := snapshot.NewStore(config.GetSnapshotDir())
	repoFactory := func(homePath string) (ports.StateRepository, error) {
		return adapterstorage.NewSQLiteRepositoryForPath(homePath)
	}
	migrationService := services.NewMigrationService(snapshots, repoFactory)

	return &Container{
		MigrationService: migrationService,
		SettingsService:  settingsService,
		StatsService:     statsService,
		TaskService:      taskService,
		TimerService:     timerService,
		stateRepo:        stateRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.stateRepo != nil {
		return c.stateRepo.Close()
	}
	return nil
}
