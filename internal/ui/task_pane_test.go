package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusflow/internal/domain"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestPane(tasks ...domain.Task) *TaskPane {
	pane := NewTaskPane(NewKeyMap(nil))
	pane.SetTasks(tasks, false)
	return pane
}

func TestTaskPaneCursorMovement(t *testing.T) {
	pane := newTestPane(
		domain.Task{ID: 1, Text: "first"},
		domain.Task{ID: 2, Text: "second"},
		domain.Task{ID: 3, Text: "third"},
	)

	pane.Update(tea.KeyMsg{Type: tea.KeyDown})
	pane.Update(keyRunes('j'))

	selected, ok := pane.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, selected.ID)

	// Moving past the end stays on the last task
	pane.Update(tea.KeyMsg{Type: tea.KeyDown})
	selected, _ = pane.Selected()
	assert.Equal(t, 3, selected.ID)

	pane.Update(keyRunes('k'))
	selected, _ = pane.Selected()
	assert.Equal(t, 2, selected.ID)
}

func TestTaskPaneEmitsActionMessages(t *testing.T) {
	pane := newTestPane(
		domain.Task{ID: 7, Text: "only"},
	)

	cmd := pane.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ToggleTaskMsg{TaskID: 7}, cmd())

	cmd = pane.Update(keyRunes('d'))
	require.NotNil(t, cmd)
	assert.Equal(t, DeleteTaskMsg{TaskID: 7}, cmd())

	cmd = pane.Update(keyRunes('n'))
	require.NotNil(t, cmd)
	assert.Equal(t, NewTaskMsg{}, cmd())
}

func TestTaskPaneUndoOnlyWhenAvailable(t *testing.T) {
	pane := newTestPane()

	assert.Nil(t, pane.Update(keyRunes('u')), "undo with an empty buffer emits nothing")

	pane.SetTasks(nil, true)
	cmd := pane.Update(keyRunes('u'))
	require.NotNil(t, cmd)
	assert.Equal(t, UndoDeleteMsg{}, cmd())
}

func TestTaskPaneMoveEmitsReorder(t *testing.T) {
	pane := newTestPane(
		domain.Task{ID: 1, Text: "a"},
		domain.Task{ID: 2, Text: "b"},
	)

	cmd := pane.Update(tea.KeyMsg{Type: tea.KeyShiftDown})
	require.NotNil(t, cmd)
	assert.Equal(t, MoveTaskMsg{TaskID: 1, NewIndex: 1}, cmd())

	// The top task cannot move further up
	assert.Nil(t, pane.Update(tea.KeyMsg{Type: tea.KeyShiftUp}))
}

func TestTaskPaneSelectedOnEmptyList(t *testing.T) {
	pane := newTestPane()

	_, ok := pane.Selected()
	assert.False(t, ok)
	assert.Contains(t, pane.View(), "No tasks yet")
}
