package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededList(t *testing.T, texts ...string) *TaskList {
	t.Helper()
	list := NewTaskList()
	for _, text := range texts {
		_, err := list.Add(text, 10)
		require.NoError(t, err)
	}
	return list
}

func taskIDs(list *TaskList) []int {
	tasks := list.Tasks()
	ids := make([]int, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}

func TestTaskList_AddAssignsSequentialIDs(t *testing.T) {
	list := NewTaskList()

	first, err := list.Add("write report", 10)
	require.NoError(t, err)
	second, err := list.Add("review PRs", 5)
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, []int{1, 2}, taskIDs(list))
}

func TestTaskList_AddRejectsBlankText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"spaces only", "   "},
		{"whitespace mix", " \t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewTaskList()
			_, err := list.Add(tt.text, 10)
			assert.ErrorIs(t, err, ErrEmptyTaskText)
			assert.Equal(t, 0, list.Len())
		})
	}
}

func TestTaskList_NewTaskListFromContinuesWatermark(t *testing.T) {
	list := NewTaskListFrom([]Task{
		{ID: 3, Text: "restored a"},
		{ID: 7, Text: "restored b"},
	})

	task, err := list.Add("new task", 10)

	require.NoError(t, err)
	assert.Equal(t, 8, task.ID, "watermark continues after the highest restored ID")
}

func TestTaskList_Edit(t *testing.T) {
	newText := "renamed"
	blank := "  "
	points := 25

	tests := []struct {
		name       string
		id         int
		text       *string
		points     *int
		wantErr    error
		wantText   string
		wantPoints int
	}{
		{"text only", 1, &newText, nil, nil, "renamed", 10},
		{"points only", 1, nil, &points, nil, "original", 25},
		{"both fields", 1, &newText, &points, nil, "renamed", 25},
		{"nil fields leave task unchanged", 1, nil, nil, nil, "original", 10},
		{"blank text rejected", 1, &blank, nil, ErrEmptyTaskText, "original", 10},
		{"unknown id", 99, &newText, nil, ErrTaskNotFound, "original", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := seededList(t, "original")

			_, err := list.Edit(tt.id, tt.text, tt.points)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			task, err := list.Get(1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, task.Text)
			assert.Equal(t, tt.wantPoints, task.Points)
		})
	}
}

func TestTaskList_EditNeverTouchesCompletionOrOrder(t *testing.T) {
	list := seededList(t, "a", "b", "c")
	_, _, err := list.Toggle(2)
	require.NoError(t, err)

	points := 50
	_, err = list.Edit(2, nil, &points)
	require.NoError(t, err)

	task, err := list.Get(2)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, []int{1, 2, 3}, taskIDs(list))
}

func TestTaskList_ToggleEmitsSignedDelta(t *testing.T) {
	list := seededList(t, "task")

	task, delta, err := list.Toggle(1)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, ScoreDelta{Completing: true, Points: 10, TaskID: 1}, delta)

	task, delta, err = list.Toggle(1)
	require.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Equal(t, ScoreDelta{Completing: false, Points: -10, TaskID: 1}, delta)
}

func TestTaskList_DoubleToggleNetsZero(t *testing.T) {
	list := seededList(t, "task")

	_, first, err := list.Toggle(1)
	require.NoError(t, err)
	_, second, err := list.Toggle(1)
	require.NoError(t, err)

	assert.Equal(t, 0, first.Points+second.Points)
}

func TestTaskList_ToggleUnknownID(t *testing.T) {
	list := seededList(t, "task")

	_, _, err := list.Toggle(42)

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskList_DeleteThenUndoRestoresPosition(t *testing.T) {
	list := seededList(t, "a", "b", "c")

	deleted, err := list.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, "b", deleted.Text)
	assert.Equal(t, []int{1, 3}, taskIDs(list))
	assert.True(t, list.CanUndo())

	restored, err := list.UndoDelete()
	require.NoError(t, err)
	assert.Equal(t, deleted, restored)
	assert.Equal(t, []int{1, 2, 3}, taskIDs(list))
	assert.False(t, list.CanUndo())
}

func TestTaskList_UndoWithEmptyBuffer(t *testing.T) {
	list := seededList(t, "a")

	_, err := list.UndoDelete()
	assert.ErrorIs(t, err, ErrNothingToUndo)

	// A second undo after a consumed buffer fails the same way
	_, err = list.Delete(1)
	require.NoError(t, err)
	_, err = list.UndoDelete()
	require.NoError(t, err)
	_, err = list.UndoDelete()
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestTaskList_DeleteOverwritesUndoBuffer(t *testing.T) {
	list := seededList(t, "a", "b")

	_, err := list.Delete(1)
	require.NoError(t, err)
	_, err = list.Delete(2)
	require.NoError(t, err)

	restored, err := list.UndoDelete()
	require.NoError(t, err)
	assert.Equal(t, "b", restored.Text, "only the most recent deletion is restorable")

	_, err = list.UndoDelete()
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestTaskList_UndoClampsIndexToShrunkList(t *testing.T) {
	list := seededList(t, "a", "b", "c")

	_, err := list.Delete(3)
	require.NoError(t, err)
	_, err = list.Delete(2)
	require.NoError(t, err)
	_, err = list.Delete(1)
	require.NoError(t, err)
	require.Equal(t, 0, list.Len())

	restored, err := list.UndoDelete()
	require.NoError(t, err)
	assert.Equal(t, 1, restored.ID)
	assert.Equal(t, []int{1}, taskIDs(list))
}

func TestTaskList_UndoKeepsCompletionAndBumpsWatermark(t *testing.T) {
	list := seededList(t, "a", "b")
	_, _, err := list.Toggle(2)
	require.NoError(t, err)

	_, err = list.Delete(2)
	require.NoError(t, err)
	restored, err := list.UndoDelete()
	require.NoError(t, err)
	assert.True(t, restored.Completed)

	added, err := list.Add("c", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, added.ID, "restored IDs are never reassigned")
}

func TestTaskList_Reorder(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		newIndex int
		wantErr  error
		wantIDs  []int
	}{
		{"move first to last", 1, 2, nil, []int{2, 3, 1}},
		{"move last to first", 3, 0, nil, []int{3, 1, 2}},
		{"move middle down", 2, 0, nil, []int{2, 1, 3}},
		{"same position is a no-op", 2, 1, nil, []int{1, 2, 3}},
		{"negative index clamps to front", 3, -5, nil, []int{3, 1, 2}},
		{"past-end index clamps to back", 1, 99, nil, []int{2, 3, 1}},
		{"unknown id", 42, 0, ErrTaskNotFound, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := seededList(t, "a", "b", "c")

			err := list.Reorder(tt.id, tt.newIndex)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantIDs, taskIDs(list))
		})
	}
}

func TestTaskList_ReorderIsAPermutation(t *testing.T) {
	list := seededList(t, "a", "b", "c", "d", "e")
	before := list.Tasks()

	require.NoError(t, list.Reorder(4, 0))
	require.NoError(t, list.Reorder(1, 4))
	require.NoError(t, list.Reorder(3, 2))

	after := list.Tasks()
	require.Len(t, after, len(before))
	seen := make(map[int]Task, len(after))
	for _, task := range after {
		seen[task.ID] = task
	}
	for _, task := range before {
		assert.Equal(t, task, seen[task.ID], "task %d must survive reordering unchanged", task.ID)
	}
}

func TestTaskList_TasksReturnsCopy(t *testing.T) {
	list := seededList(t, "a")

	tasks := list.Tasks()
	tasks[0].Text = "mutated"

	task, err := list.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", task.Text)
}
