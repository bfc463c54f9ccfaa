package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"focusflow/internal/domain"
	"focusflow/internal/theme"
)

// TaskPane renders the ordered task list and turns navigation and task
// key presses into action messages for the Model. It keeps only the
// cursor; the task slice is refreshed from TaskService after every
// mutation.
type TaskPane struct {
	canUndo bool
	cursor  int
	height  int
	keys    KeyMap
	tasks   []domain.Task
	width   int
}

// NewTaskPane creates a task pane
func NewTaskPane(keys KeyMap) *TaskPane {
	return &TaskPane{keys: keys}
}

// SetTasks replaces the displayed tasks, clamping the cursor
func (tp *TaskPane) SetTasks(tasks []domain.Task, canUndo bool) {
	tp.tasks = tasks
	tp.canUndo = canUndo
	tp.clampCursor()
}

// SetSize resizes the pane
func (tp *TaskPane) SetSize(width, height int) {
	tp.width = width
	tp.height = height
}

// Selected returns the task under the cursor
func (tp *TaskPane) Selected() (domain.Task, bool) {
	if tp.cursor < 0 || tp.cursor >= len(tp.tasks) {
		return domain.Task{}, false
	}
	return tp.tasks[tp.cursor], true
}

// Select moves the cursor to the given index, clamped to the list
func (tp *TaskPane) Select(index int) {
	tp.cursor = index
	tp.clampCursor()
}

func (tp *TaskPane) clampCursor() {
	if tp.cursor >= len(tp.tasks) {
		tp.cursor = len(tp.tasks) - 1
	}
	if tp.cursor < 0 {
		tp.cursor = 0
	}
}

// Update handles navigation and task keys, emitting action messages
// for anything that mutates state.
func (tp *TaskPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, tp.keys.Navigation.Up.Binding):
		if tp.cursor > 0 {
			tp.cursor--
		}
	case key.Matches(keyMsg, tp.keys.Navigation.Down.Binding):
		if tp.cursor < len(tp.tasks)-1 {
			tp.cursor++
		}
	case key.Matches(keyMsg, tp.keys.Navigation.MoveUp.Binding):
		if task, ok := tp.Selected(); ok && tp.cursor > 0 {
			return actionCmd(MoveTaskMsg{TaskID: task.ID, NewIndex: tp.cursor - 1})
		}
	case key.Matches(keyMsg, tp.keys.Navigation.MoveDown.Binding):
		if task, ok := tp.Selected(); ok && tp.cursor < len(tp.tasks)-1 {
			return actionCmd(MoveTaskMsg{TaskID: task.ID, NewIndex: tp.cursor + 1})
		}
	case key.Matches(keyMsg, tp.keys.Tasks.New.Binding):
		return actionCmd(NewTaskMsg{})
	case key.Matches(keyMsg, tp.keys.Tasks.Edit.Binding):
		if task, ok := tp.Selected(); ok {
			return actionCmd(EditTaskMsg{TaskID: task.ID})
		}
	case key.Matches(keyMsg, tp.keys.Tasks.ToggleDone.Binding):
		if task, ok := tp.Selected(); ok {
			return actionCmd(ToggleTaskMsg{TaskID: task.ID})
		}
	case key.Matches(keyMsg, tp.keys.Tasks.Delete.Binding):
		if task, ok := tp.Selected(); ok {
			return actionCmd(DeleteTaskMsg{TaskID: task.ID})
		}
	case key.Matches(keyMsg, tp.keys.Tasks.Undo.Binding):
		if tp.canUndo {
			return actionCmd(UndoDeleteMsg{})
		}
	}
	return nil
}

// actionCmd wraps an action message in a tea.Cmd
func actionCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// renderTaskRow renders one task line
func renderTaskRow(task domain.Task, selected bool) string {
	checkbox := "[ ]"
	if task.Completed {
		checkbox = "[x]"
	}

	points := theme.PointsStyle(task.Points).Render(fmt.Sprintf("%+d", task.Points))

	textStyle := theme.TaskStyle
	if task.Completed {
		textStyle = theme.CompletedTaskStyle
	}

	cursor := "  "
	row := cursor + checkbox + " " + textStyle.Render(task.Text) + " " + points
	if selected {
		row = "> " + checkbox + " " + theme.SelectedTaskStyle.Render(task.Text) + " " + points
	}
	return row
}

// View renders the task list
func (tp *TaskPane) View() string {
	if len(tp.tasks) == 0 {
		hint := tp.keys.Tasks.New.Binding.Help()
		return theme.HelpStyle.Render(fmt.Sprintf("No tasks yet. Press %s to %s.", hint.Key, hint.Desc))
	}

	var b strings.Builder
	visible := tp.tasks
	offset := 0

	// Scroll the window so the cursor stays visible
	if tp.height > 0 && len(tp.tasks) > tp.height {
		offset = tp.cursor - tp.height/2
		if offset < 0 {
			offset = 0
		}
		if offset > len(tp.tasks)-tp.height {
			offset = len(tp.tasks) - tp.height
		}
		visible = tp.tasks[offset : offset+tp.height]
	}

	for i, task := range visible {
		b.WriteString(renderTaskRow(task, offset+i == tp.cursor))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
