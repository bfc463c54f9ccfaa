package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focusflow/internal/domain"
	"focusflow/internal/logging"
	"focusflow/internal/ports"
)

// Document file names inside the snapshot directory
const (
	configFile = "config.json"
	statsFile  = "stats.json"
	tasksFile  = "tasks.json"
)

// Store reads and writes the three JSON interchange documents (task
// list, stats, timer config). Missing or corrupt documents load as
// defaults rather than failing; a warning is logged so the condition
// is visible. Writes take an exclusive file lock.
type Store struct {
	dir string
}

// Verify interface compliance at compile time
var _ ports.SnapshotStore = (*Store)(nil)

// NewStore creates a snapshot store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// taskDocument is the wire form of one task. Points is a pointer so a
// document written before scoring existed loads with points defaulted
// to zero.
type taskDocument struct {
	Completed bool   `json:"completed"`
	ID        int    `json:"id"`
	Points    *int   `json:"points,omitempty"`
	Text      string `json:"text"`
}

// configDocument is the wire form of the timer configuration
type configDocument struct {
	FocusMinutes            int `json:"focusMinutes"`
	LongBreakMinutes        int `json:"longBreakMinutes"`
	SessionsBeforeLongBreak int `json:"sessionsBeforeLongBreak"`
	ShortBreakMinutes       int `json:"shortBreakMinutes"`
}

// statsDocument is the wire form of the aggregated statistics
type statsDocument struct {
	Daily    []dailyStatDocument `json:"daily"`
	Lifetime lifetimeDocument    `json:"lifetime"`
}

type dailyStatDocument struct {
	Date              string `json:"date"`
	FocusMinutes      int    `json:"focusMinutes"`
	PointsNet         int    `json:"pointsNet"`
	SessionsCompleted int    `json:"sessionsCompleted"`
	TasksCompleted    int    `json:"tasksCompleted"`
}

type lifetimeDocument struct {
	CurrentStreak          int    `json:"currentStreak"`
	LastCompletionDate     string `json:"lastCompletionDate"`
	LongestStreak          int    `json:"longestStreak"`
	TotalFocusMinutes      int    `json:"totalFocusMinutes"`
	TotalSessionsCompleted int    `json:"totalSessionsCompleted"`
}

// LoadTasks implements ports.SnapshotStore.LoadTasks
func (s *Store) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	var docs []taskDocument
	if !s.readDocument(tasksFile, &docs) {
		return nil, nil
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		points := 0
		if doc.Points != nil {
			points = *doc.Points
		}
		tasks = append(tasks, domain.Task{
			Completed: doc.Completed,
			ID:        doc.ID,
			Points:    points,
			Text:      doc.Text,
		})
	}
	return tasks, nil
}

// SaveTasks implements ports.SnapshotStore.SaveTasks
func (s *Store) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	docs := make([]taskDocument, len(tasks))
	for i, task := range tasks {
		points := task.Points
		docs[i] = taskDocument{
			Completed: task.Completed,
			ID:        task.ID,
			Points:    &points,
			Text:      task.Text,
		}
	}
	return s.writeDocument(tasksFile, docs)
}

// LoadStats implements ports.SnapshotStore.LoadStats
func (s *Store) LoadStats(ctx context.Context) (domain.StatsSnapshot, error) {
	var doc statsDocument
	if !s.readDocument(statsFile, &doc) {
		return domain.StatsSnapshot{}, nil
	}

	snapshot := domain.StatsSnapshot{
		Lifetime: domain.LifetimeStat{
			CurrentStreak:          doc.Lifetime.CurrentStreak,
			LastCompletionDate:     doc.Lifetime.LastCompletionDate,
			LongestStreak:          doc.Lifetime.LongestStreak,
			TotalFocusMinutes:      doc.Lifetime.TotalFocusMinutes,
			TotalSessionsCompleted: doc.Lifetime.TotalSessionsCompleted,
		},
	}
	for _, day := range doc.Daily {
		snapshot.Daily = append(snapshot.Daily, domain.DailyStat{
			Date:              day.Date,
			FocusMinutes:      day.FocusMinutes,
			PointsNet:         day.PointsNet,
			SessionsCompleted: day.SessionsCompleted,
			TasksCompleted:    day.TasksCompleted,
		})
	}
	return snapshot, nil
}

// SaveStats implements ports.SnapshotStore.SaveStats
func (s *Store) SaveStats(ctx context.Context, snapshot domain.StatsSnapshot) error {
	doc := statsDocument{
		Daily: make([]dailyStatDocument, len(snapshot.Daily)),
		Lifetime: lifetimeDocument{
			CurrentStreak:          snapshot.Lifetime.CurrentStreak,
			LastCompletionDate:     snapshot.Lifetime.LastCompletionDate,
			LongestStreak:          snapshot.Lifetime.LongestStreak,
			TotalFocusMinutes:      snapshot.Lifetime.TotalFocusMinutes,
			TotalSessionsCompleted: snapshot.Lifetime.TotalSessionsCompleted,
		},
	}
	for i, day := range snapshot.Daily {
		doc.Daily[i] = dailyStatDocument{
			Date:              day.Date,
			FocusMinutes:      day.FocusMinutes,
			PointsNet:         day.PointsNet,
			SessionsCompleted: day.SessionsCompleted,
			TasksCompleted:    day.TasksCompleted,
		}
	}
	return s.writeDocument(statsFile, doc)
}

// LoadTimerConfig implements ports.SnapshotStore.LoadTimerConfig
func (s *Store) LoadTimerConfig(ctx context.Context) (domain.TimerConfig, bool, error) {
	var doc configDocument
	if !s.readDocument(configFile, &doc) {
		return domain.TimerConfig{}, false, nil
	}

	config := domain.TimerConfig{
		FocusDuration:           time.Duration(doc.FocusMinutes) * time.Minute,
		LongBreakDuration:       time.Duration(doc.LongBreakMinutes) * time.Minute,
		SessionsBeforeLongBreak: doc.SessionsBeforeLongBreak,
		ShortBreakDuration:      time.Duration(doc.ShortBreakMinutes) * time.Minute,
	}
	if err := config.Validate(); err != nil {
		logging.Logger.Warn("ignoring invalid config document", "file", configFile, "error", err)
		return domain.TimerConfig{}, false, nil
	}
	return config, true, nil
}

// SaveTimerConfig implements ports.SnapshotStore.SaveTimerConfig
func (s *Store) SaveTimerConfig(ctx context.Context, config domain.TimerConfig) error {
	doc := configDocument{
		FocusMinutes:            int(config.FocusDuration / time.Minute),
		LongBreakMinutes:        int(config.LongBreakDuration / time.Minute),
		SessionsBeforeLongBreak: config.SessionsBeforeLongBreak,
		ShortBreakMinutes:       int(config.ShortBreakDuration / time.Minute),
	}
	return s.writeDocument(configFile, doc)
}

// readDocument unmarshals a document into v. Returns false when the
// document is absent or corrupt; corrupt documents log a warning so the
// caller falls back to defaults instead of failing startup.
func (s *Store) readDocument(name string, v any) bool {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("failed to read document", "file", path, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		logging.Logger.Warn("ignoring corrupt document", "file", path, "error", err)
		return false
	}
	return true
}

// writeDocument marshals v and writes it under an exclusive file lock
func (s *Store) writeDocument(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", name, err)
	}
	defer unlockFile(file)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", name, err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek in %s: %w", name, err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}
