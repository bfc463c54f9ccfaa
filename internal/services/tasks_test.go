package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusflow/internal/domain"
)

func newTaskFixture(t *testing.T, seed ...domain.Task) (*TaskService, *StatsService, *fakeStateRepository) {
	t.Helper()
	ctx := context.Background()
	repo := &fakeStateRepository{tasks: seed}

	stats, err := NewStatsService(ctx, repo, newFakeClock("2026-08-20"))
	require.NoError(t, err)
	tasks, err := NewTaskService(ctx, repo, stats)
	require.NoError(t, err)
	return tasks, stats, repo
}

func TestTaskService_AddPersists(t *testing.T) {
	tasks, _, repo := newTaskFixture(t)

	task, err := tasks.Add(context.Background(), "write report", 5)

	require.NoError(t, err)
	assert.Equal(t, 1, task.ID)
	require.Len(t, repo.tasks, 1)
	assert.Equal(t, "write report", repo.tasks[0].Text)
}

func TestTaskService_AddEmptyTextRejected(t *testing.T) {
	tasks, _, repo := newTaskFixture(t)

	_, err := tasks.Add(context.Background(), "  ", 5)

	assert.ErrorIs(t, err, domain.ErrEmptyTaskText)
	assert.Empty(t, repo.tasks)
}

func TestTaskService_SeededListContinuesIDs(t *testing.T) {
	tasks, _, _ := newTaskFixture(t,
		domain.Task{ID: 4, Text: "restored"},
	)

	task, err := tasks.Add(context.Background(), "new", 0)

	require.NoError(t, err)
	assert.Equal(t, 5, task.ID)
}

func TestTaskService_ToggleFeedsStats(t *testing.T) {
	tasks, stats, repo := newTaskFixture(t)
	ctx := context.Background()
	added, err := tasks.Add(ctx, "Write report", 5)
	require.NoError(t, err)

	_, err = tasks.Toggle(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TodayStat().PointsNet)
	assert.Equal(t, 1, stats.TodayStat().TasksCompleted)

	_, err = tasks.Toggle(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TodayStat().PointsNet)
	assert.Equal(t, 0, stats.TodayStat().TasksCompleted)

	// Toggling checkpoints the stats as well as the tasks
	assert.Equal(t, 0, repo.stats.Lifetime.TotalSessionsCompleted)
	require.NotEmpty(t, repo.stats.Daily)
}

func TestTaskService_DeleteKeepsScoringHistory(t *testing.T) {
	tasks, stats, repo := newTaskFixture(t)
	ctx := context.Background()
	added, err := tasks.Add(ctx, "Write report", 5)
	require.NoError(t, err)
	_, err = tasks.Toggle(ctx, added.ID)
	require.NoError(t, err)

	_, err = tasks.Delete(ctx, added.ID)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TodayStat().PointsNet, "deletion does not reverse scoring history")
	assert.Empty(t, repo.tasks)
	assert.True(t, tasks.CanUndo())
}

func TestTaskService_UndoDeleteRestoresAndPersists(t *testing.T) {
	tasks, _, repo := newTaskFixture(t)
	ctx := context.Background()
	added, err := tasks.Add(ctx, "task", 5)
	require.NoError(t, err)
	_, err = tasks.Delete(ctx, added.ID)
	require.NoError(t, err)

	restored, err := tasks.UndoDelete(ctx)

	require.NoError(t, err)
	assert.Equal(t, added.ID, restored.ID)
	require.Len(t, repo.tasks, 1)

	_, err = tasks.UndoDelete(ctx)
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
	assert.Nil(t, repo.undoEntry, "undoing clears the stored buffer")
}

func TestTaskService_UndoSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	repo := &fakeStateRepository{}

	// First process: add a task, toggle it, delete it
	stats, err := NewStatsService(ctx, repo, newFakeClock("2026-08-20"))
	require.NoError(t, err)
	first, err := NewTaskService(ctx, repo, stats)
	require.NoError(t, err)
	added, err := first.Add(ctx, "write report", 5)
	require.NoError(t, err)
	_, err = first.Toggle(ctx, added.ID)
	require.NoError(t, err)
	_, err = first.Delete(ctx, added.ID)
	require.NoError(t, err)

	// Second process over the same store restores the deletion
	second, err := NewTaskService(ctx, repo, stats)
	require.NoError(t, err)
	require.True(t, second.CanUndo())

	restored, err := second.UndoDelete(ctx)
	require.NoError(t, err)
	assert.Equal(t, added.ID, restored.ID)
	assert.Equal(t, "write report", restored.Text)
	assert.Equal(t, 5, restored.Points)
	assert.True(t, restored.Completed, "the restored task keeps its completion flag")

	// A third process sees the buffer consumed
	third, err := NewTaskService(ctx, repo, stats)
	require.NoError(t, err)
	assert.False(t, third.CanUndo())
	_, err = third.UndoDelete(ctx)
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
}

func TestTaskService_DeletePersistsUndoBuffer(t *testing.T) {
	tasks, _, repo := newTaskFixture(t)
	ctx := context.Background()
	added, err := tasks.Add(ctx, "task", 3)
	require.NoError(t, err)

	_, err = tasks.Delete(ctx, added.ID)

	require.NoError(t, err)
	require.NotNil(t, repo.undoEntry)
	assert.Equal(t, added.ID, repo.undoEntry.Task.ID)
	assert.Equal(t, 0, repo.undoEntry.Index)
}

func TestTaskService_ReorderPersistsNewOrder(t *testing.T) {
	tasks, _, repo := newTaskFixture(t)
	ctx := context.Background()
	for _, text := range []string{"a", "b", "c"} {
		_, err := tasks.Add(ctx, text, 0)
		require.NoError(t, err)
	}

	require.NoError(t, tasks.Reorder(ctx, 1, 2))

	require.Len(t, repo.tasks, 3)
	assert.Equal(t, "b", repo.tasks[0].Text)
	assert.Equal(t, "c", repo.tasks[1].Text)
	assert.Equal(t, "a", repo.tasks[2].Text)
}

func TestTaskService_UnknownIDErrors(t *testing.T) {
	tasks, _, _ := newTaskFixture(t)
	ctx := context.Background()

	_, err := tasks.Toggle(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = tasks.Delete(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	err = tasks.Reorder(ctx, 42, 0)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_SaveFailureKeepsMemoryState(t *testing.T) {
	tasks, _, repo := newTaskFixture(t)
	ctx := context.Background()
	repo.failSaves = true

	task, err := tasks.Add(ctx, "survives", 0)

	require.Error(t, err, "the save failure is surfaced")
	got, getErr := tasks.Get(task.ID)
	require.NoError(t, getErr, "the in-memory list keeps the task")
	assert.Equal(t, "survives", got.Text)
}
