package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusflow/internal/domain"
	"focusflow/internal/logging"
)

func TestMain(m *testing.M) {
	logging.Initialize(false, "", 1000)
	os.Exit(m.Run())
}

func TestStore_TasksRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	tasks := []domain.Task{
		{ID: 1, Text: "write report", Points: 5, Completed: true},
		{ID: 2, Text: "multi\nline", Points: -3},
	}
	require.NoError(t, store.SaveTasks(ctx, tasks))

	loaded, err := store.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, loaded)
}

func TestStore_LoadTasksMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	loaded, err := store.LoadTasks(context.Background())

	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_LoadTasksCorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{not json"), 0644))
	store := NewStore(dir)

	loaded, err := store.LoadTasks(context.Background())

	require.NoError(t, err, "a corrupt document must not fail the load")
	assert.Empty(t, loaded)
}

func TestStore_LoadTasksDefaultsMissingPoints(t *testing.T) {
	dir := t.TempDir()
	doc := `[{"id": 1, "text": "old task", "completed": false}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.json"), []byte(doc), 0644))
	store := NewStore(dir)

	loaded, err := store.LoadTasks(context.Background())

	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 0, loaded[0].Points)
	assert.Equal(t, "old task", loaded[0].Text)
}

func TestStore_TimerConfigRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	_, found, err := store.LoadTimerConfig(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	config := domain.TimerConfig{
		FocusDuration:           50 * time.Minute,
		LongBreakDuration:       20 * time.Minute,
		SessionsBeforeLongBreak: 3,
		ShortBreakDuration:      10 * time.Minute,
	}
	require.NoError(t, store.SaveTimerConfig(ctx, config))

	loaded, found, err := store.LoadTimerConfig(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, config, loaded)
}

func TestStore_LoadTimerConfigRejectsInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	doc := `{"focusMinutes": 0, "shortBreakMinutes": 5, "longBreakMinutes": 30, "sessionsBeforeLongBreak": 4}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(doc), 0644))
	store := NewStore(dir)

	_, found, err := store.LoadTimerConfig(context.Background())

	require.NoError(t, err)
	assert.False(t, found, "an invalid config falls back to defaults")
}

func TestStore_StatsRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	snapshot := domain.StatsSnapshot{
		Daily: []domain.DailyStat{
			{Date: "2026-08-20", FocusMinutes: 50, PointsNet: 15, SessionsCompleted: 2, TasksCompleted: 3},
		},
		Lifetime: domain.LifetimeStat{
			CurrentStreak:          4,
			LastCompletionDate:     "2026-08-20",
			LongestStreak:          7,
			TotalFocusMinutes:      500,
			TotalSessionsCompleted: 20,
		},
	}
	require.NoError(t, store.SaveStats(ctx, snapshot))

	loaded, err := store.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)
}

func TestStore_SaveOverwritesPreviousDocument(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.SaveTasks(ctx, []domain.Task{
		{ID: 1, Text: "a long task text that makes the first document bigger"},
	}))
	require.NoError(t, store.SaveTasks(ctx, []domain.Task{{ID: 2, Text: "b"}}))

	loaded, err := store.LoadTasks(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 2, loaded[0].ID)
}
