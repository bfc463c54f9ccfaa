package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// TaskFormResult contains the result of the task add/edit form
type TaskFormResult struct {
	Cancelled bool
	Points    int
	TaskID    int // 0 when creating a new task
	Text      string
}

// TaskForm is a Bubble Tea component for creating or editing a task
type TaskForm struct {
	Completed bool // Exported so Model can check completion
	form      *huh.Form
	pointsRaw string
	result    TaskFormResult
}

// NewTaskForm creates a task form. Pass taskID 0 with empty initial
// values for creation; an existing ID with the current values for edit.
func NewTaskForm(taskID int, initialText string, initialPoints int) *TaskForm {
	tf := &TaskForm{
		result: TaskFormResult{
			TaskID: taskID,
			Text:   initialText,
		},
	}
	if taskID != 0 {
		tf.pointsRaw = strconv.Itoa(initialPoints)
	}

	tf.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Task").
			Value(&tf.result.Text).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("task text required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Points").
			Description("Signed point value scored when the task is completed. Leave empty for 0.").
			Placeholder("0").
			Value(&tf.pointsRaw).
			Validate(func(s string) error {
				if s == "" {
					return nil
				}
				if _, err := strconv.Atoi(s); err != nil {
					return fmt.Errorf("must be a whole number (e.g. 5 or -2)")
				}
				return nil
			}),
	))

	return tf
}

func (tf *TaskForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			tf.Completed = true
			tf.result.Cancelled = true
			return tf, nil
		}
	}

	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}

	if tf.form.State == huh.StateCompleted {
		tf.result.Text = strings.TrimSpace(tf.result.Text)
		if tf.pointsRaw != "" {
			// Validated by the form, cannot fail here
			tf.result.Points, _ = strconv.Atoi(tf.pointsRaw)
		}
		tf.Completed = true
	}

	return tf, cmd
}

func (tf *TaskForm) View() string {
	if tf.form != nil {
		return tf.form.View()
	}
	return ""
}

// Result returns the form result
func (tf *TaskForm) Result() TaskFormResult {
	return tf.result
}
