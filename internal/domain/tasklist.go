package domain

import (
	"fmt"
	"strings"
)

// TaskList is the ordered, mutable task collection. Slice position is the
// display order; every mutation keeps positions contiguous. A single-slot
// undo buffer holds the last deletion. Not safe for concurrent use; all
// commands are processed sequentially by one owner.
type TaskList struct {
	nextID int
	tasks  []Task
	undo   *UndoEntry
}

// NewTaskList creates an empty task list
func NewTaskList() *TaskList {
	return &TaskList{nextID: 1}
}

// NewTaskListFrom creates a task list seeded with existing tasks in the
// given display order. The ID watermark continues after the highest
// existing ID so restored lists never reuse an ID.
func NewTaskListFrom(tasks []Task) *TaskList {
	l := &TaskList{
		nextID: 1,
		tasks:  append([]Task(nil), tasks...),
	}
	for _, t := range l.tasks {
		if t.ID >= l.nextID {
			l.nextID = t.ID + 1
		}
	}
	return l
}

// Tasks returns the tasks in display order. The slice is a copy.
func (l *TaskList) Tasks() []Task {
	return append([]Task(nil), l.tasks...)
}

// Len returns the number of tasks
func (l *TaskList) Len() int { return len(l.tasks) }

// CanUndo reports whether the undo buffer holds a deletion
func (l *TaskList) CanUndo() bool { return l.undo != nil }

// PendingUndo returns the buffered deletion, if any
func (l *TaskList) PendingUndo() (UndoEntry, bool) {
	if l.undo == nil {
		return UndoEntry{}, false
	}
	return *l.undo, true
}

// RestoreUndo seeds the undo buffer, overwriting any current entry.
// Used when rebuilding a list from persisted state.
func (l *TaskList) RestoreUndo(entry UndoEntry) {
	buffered := entry
	l.undo = &buffered
}

// indexOf returns the position of a task by ID, or -1
func (l *TaskList) indexOf(id int) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Get returns a task by ID
func (l *TaskList) Get(id int) (Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	return l.tasks[i], nil
}

// Add appends a new task at the end of the order. Text may be multi-line
// but must not be blank.
func (l *TaskList) Add(text string, points int) (Task, error) {
	if strings.TrimSpace(text) == "" {
		return Task{}, ErrEmptyTaskText
	}
	task := Task{
		ID:     l.nextID,
		Points: points,
		Text:   text,
	}
	l.nextID++
	l.tasks = append(l.tasks, task)
	return task, nil
}

// Edit updates the supplied fields of a task in place. Nil fields are
// left unchanged; order and completion are never touched.
func (l *TaskList) Edit(id int, text *string, points *int) (Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	if text != nil {
		if strings.TrimSpace(*text) == "" {
			return Task{}, ErrEmptyTaskText
		}
		l.tasks[i].Text = *text
	}
	if points != nil {
		l.tasks[i].Points = *points
	}
	return l.tasks[i], nil
}

// Toggle flips a task's completion flag and returns the resulting score
// delta: +points on completion, -points on un-completion.
func (l *TaskList) Toggle(id int) (Task, ScoreDelta, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, ScoreDelta{}, fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	l.tasks[i].Completed = !l.tasks[i].Completed

	task := l.tasks[i]
	delta := ScoreDelta{
		Completing: task.Completed,
		Points:     task.Points,
		TaskID:     task.ID,
	}
	if !task.Completed {
		delta.Points = -task.Points
	}
	return task, delta, nil
}

// Delete removes a task and stores it in the undo buffer, overwriting any
// previous entry. An already-applied score delta is not reversed; deletion
// is independent of scoring history.
func (l *TaskList) Delete(id int) (Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	task := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	l.undo = &UndoEntry{Index: i, Task: task}
	return task, nil
}

// Reorder moves a task to newIndex with list-move semantics: the task is
// removed and reinserted, shifting the tasks in between by one position.
// newIndex is clamped to the valid range.
func (l *TaskList) Reorder(id, newIndex int) error {
	i := l.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(l.tasks)-1 {
		newIndex = len(l.tasks) - 1
	}
	if newIndex == i {
		return nil
	}

	task := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	l.tasks = append(l.tasks[:newIndex], append([]Task{task}, l.tasks[newIndex:]...)...)
	return nil
}

// UndoDelete reinserts the last deleted task at min(original index,
// current length) and clears the buffer. The restored task keeps its ID,
// fields, and completion flag; stat history is not re-emitted. Returns
// ErrNothingToUndo when the buffer is empty.
func (l *TaskList) UndoDelete() (Task, error) {
	if l.undo == nil {
		return Task{}, ErrNothingToUndo
	}
	entry := *l.undo
	l.undo = nil

	index := entry.Index
	if index > len(l.tasks) {
		index = len(l.tasks)
	}
	l.tasks = append(l.tasks[:index], append([]Task{entry.Task}, l.tasks[index:]...)...)

	if entry.Task.ID >= l.nextID {
		l.nextID = entry.Task.ID + 1
	}
	return entry.Task, nil
}
