package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"focusflow/internal/domain"
	"focusflow/internal/logging"
	"focusflow/internal/ports"
)

// SQLiteRepository implements ports.StateRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.StateRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the focusflow logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FOCUSFLOW_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&TaskModel{}, &UndoEntryModel{}, &DailyStatModel{}, &LifetimeStatModel{}, &TimerConfigModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath creates a new SQLiteRepository for a specific FOCUSFLOW_HOME path
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LoadTasks implements ports.TaskReader. Positions are normalized to
// 0..n-1 on load so gaps or duplicates from interrupted writes never
// reach the domain.
func (r *SQLiteRepository) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	var models []TaskModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("position ASC, id ASC").Find(&models).Error; err != nil {
				return fmt.Errorf("failed to load tasks: %w", err)
			}

			needsNormalization := false
			for i, model := range models {
				if model.Position != i {
					needsNormalization = true
					break
				}
			}

			if needsNormalization {
				for i, model := range models {
					if model.Position != i {
						tx.Model(&TaskModel{}).Where("id = ?", model.ID).Update("position", i)
						models[i].Position = i
					}
				}
			}

			return nil
		})
	}, 3)

	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, len(models))
	for i, model := range models {
		tasks[i] = taskModelToDomain(model)
	}
	return tasks, nil
}

// SaveTasks implements ports.TaskWriter. The stored list is replaced
// with the given one in a single transaction; slice index becomes the
// stored position.
func (r *SQLiteRepository) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing []TaskModel
			if err := tx.Find(&existing).Error; err != nil {
				return fmt.Errorf("failed to load existing tasks: %w", err)
			}

			existingIDs := make(map[int]bool, len(existing))
			for _, model := range existing {
				existingIDs[model.ID] = true
			}

			for i, task := range tasks {
				model := domainToTaskModel(task, i)
				if err := tx.Save(&model).Error; err != nil {
					return fmt.Errorf("failed to save task %d: %w", task.ID, err)
				}
				delete(existingIDs, task.ID)
			}

			// Delete removed tasks
			for id := range existingIDs {
				if err := tx.Where("id = ?", id).Delete(&TaskModel{}).Error; err != nil {
					return fmt.Errorf("failed to delete task %d: %w", id, err)
				}
			}

			return nil
		})
	}, 3)
}

// LoadUndo implements ports.UndoStore.LoadUndo
func (r *SQLiteRepository) LoadUndo(ctx context.Context) (domain.UndoEntry, bool, error) {
	var model UndoEntryModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", singletonID).First(&model).Error
	}, 3)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UndoEntry{}, false, nil
	}
	if err != nil {
		return domain.UndoEntry{}, false, fmt.Errorf("failed to load undo entry: %w", err)
	}
	return undoEntryModelToDomain(model), true, nil
}

// SaveUndo implements ports.UndoStore.SaveUndo. A nil entry deletes the
// stored row, leaving the buffer empty.
func (r *SQLiteRepository) SaveUndo(ctx context.Context, entry *domain.UndoEntry) error {
	return withRetry(func() error {
		if entry == nil {
			if err := r.db.WithContext(ctx).Where("id = ?", singletonID).Delete(&UndoEntryModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear undo entry: %w", err)
			}
			return nil
		}

		model := domainToUndoEntryModel(*entry)
		if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
			return fmt.Errorf("failed to save undo entry: %w", err)
		}
		return nil
	}, 3)
}

// LoadStats implements ports.StatsStore.LoadStats
func (r *SQLiteRepository) LoadStats(ctx context.Context) (domain.StatsSnapshot, error) {
	var daily []DailyStatModel
	var lifetime LifetimeStatModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("date ASC").Find(&daily).Error; err != nil {
				return fmt.Errorf("failed to load daily stats: %w", err)
			}

			err := tx.Where("id = ?", singletonID).First(&lifetime).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to load lifetime stats: %w", err)
			}
			return nil
		})
	}, 3)

	if err != nil {
		return domain.StatsSnapshot{}, err
	}

	snapshot := domain.StatsSnapshot{Lifetime: lifetimeStatModelToDomain(lifetime)}
	for _, model := range daily {
		snapshot.Daily = append(snapshot.Daily, dailyStatModelToDomain(model))
	}
	return snapshot, nil
}

// SaveStats implements ports.StatsStore.SaveStats
func (r *SQLiteRepository) SaveStats(ctx context.Context, snapshot domain.StatsSnapshot) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, stat := range snapshot.Daily {
				model := domainToDailyStatModel(stat)
				if err := tx.Save(&model).Error; err != nil {
					return fmt.Errorf("failed to save daily stat %s: %w", stat.Date, err)
				}
			}

			lifetime := domainToLifetimeStatModel(snapshot.Lifetime)
			if err := tx.Save(&lifetime).Error; err != nil {
				return fmt.Errorf("failed to save lifetime stats: %w", err)
			}
			return nil
		})
	}, 3)
}

// LoadTimerConfig implements ports.TimerConfigStore.LoadTimerConfig
func (r *SQLiteRepository) LoadTimerConfig(ctx context.Context) (domain.TimerConfig, bool, error) {
	var model TimerConfigModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", singletonID).First(&model).Error
	}, 3)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.TimerConfig{}, false, nil
	}
	if err != nil {
		return domain.TimerConfig{}, false, fmt.Errorf("failed to load timer config: %w", err)
	}
	return timerConfigModelToDomain(model), true, nil
}

// SaveTimerConfig implements ports.TimerConfigStore.SaveTimerConfig
func (r *SQLiteRepository) SaveTimerConfig(ctx context.Context, config domain.TimerConfig) error {
	return withRetry(func() error {
		model := domainToTimerConfigModel(config)
		if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
			return fmt.Errorf("failed to save timer config: %w", err)
		}
		return nil
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
