package services

import (
	"context"
	"sync"

	"focusflow/internal/domain"
	"focusflow/internal/logging"
	"focusflow/internal/ports"
)

// TaskService owns the in-memory task list and keeps the store in sync
// after every mutation. The list is authoritative; a failed save is
// surfaced as a warning without rolling back the in-memory change.
type TaskService struct {
	list  *domain.TaskList
	mu    sync.Mutex
	repo  ports.TaskStore
	stats *StatsService
}

// NewTaskService creates a TaskService seeded from the store. The
// persisted undo buffer is restored alongside the tasks so a deletion
// survives across processes until it is undone or overwritten.
func NewTaskService(ctx context.Context, repo ports.TaskStore, stats *StatsService) (*TaskService, error) {
	tasks, err := repo.LoadTasks(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load tasks", "error", err)
		return nil, err
	}

	list := domain.NewTaskListFrom(tasks)

	entry, found, err := repo.LoadUndo(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load undo buffer", "error", err)
		return nil, err
	}
	if found {
		list.RestoreUndo(entry)
	}

	return &TaskService{
		list:  list,
		repo:  repo,
		stats: stats,
	}, nil
}

// List returns the tasks in display order
func (s *TaskService) List() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Tasks()
}

// Get returns a task by ID
func (s *TaskService) Get(id int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Get(id)
}

// CanUndo reports whether a deleted task can be restored
func (s *TaskService) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.CanUndo()
}

// Add appends a new task at the end of the order
func (s *TaskService) Add(ctx context.Context, text string, points int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.list.Add(text, points)
	if err != nil {
		return domain.Task{}, err
	}

	logging.Logger.Info("Task added", "id", task.ID, "points", task.Points)
	return task, s.save(ctx)
}

// Edit updates the supplied fields of a task. Nil fields are left
// unchanged.
func (s *TaskService) Edit(ctx context.Context, id int, text *string, points *int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.list.Edit(id, text, points)
	if err != nil {
		return domain.Task{}, err
	}

	logging.Logger.Info("Task edited", "id", task.ID)
	return task, s.save(ctx)
}

// Toggle flips a task's completion flag and feeds the score delta into
// the stats aggregator
func (s *TaskService) Toggle(ctx context.Context, id int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, delta, err := s.list.Toggle(id)
	if err != nil {
		return domain.Task{}, err
	}

	s.stats.RecordScoreDelta(delta)
	logging.Logger.Info("Task toggled", "id", task.ID, "completed", task.Completed, "points_delta", delta.Points)

	if err := s.save(ctx); err != nil {
		return task, err
	}
	return task, s.stats.Checkpoint(ctx)
}

// Delete removes a task, keeping it in the undo buffer. Scoring
// history already recorded for the task is untouched.
func (s *TaskService) Delete(ctx context.Context, id int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.list.Delete(id)
	if err != nil {
		return domain.Task{}, err
	}

	logging.Logger.Info("Task deleted", "id", task.ID)
	if err := s.save(ctx); err != nil {
		return task, err
	}
	return task, s.saveUndo(ctx)
}

// Reorder moves a task to a new display position
func (s *TaskService) Reorder(ctx context.Context, id, newIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.list.Reorder(id, newIndex); err != nil {
		return err
	}

	logging.Logger.Debug("Task reordered", "id", id, "new_index", newIndex)
	return s.save(ctx)
}

// UndoDelete restores the last deleted task
func (s *TaskService) UndoDelete(ctx context.Context) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.list.UndoDelete()
	if err != nil {
		return domain.Task{}, err
	}

	logging.Logger.Info("Task delete undone", "id", task.ID)
	if err := s.save(ctx); err != nil {
		return task, err
	}
	return task, s.saveUndo(ctx)
}

// save checkpoints the list to the store. Must be called with the
// mutex held.
func (s *TaskService) save(ctx context.Context) error {
	if err := s.repo.SaveTasks(ctx, s.list.Tasks()); err != nil {
		logging.Logger.Warn("Failed to save tasks", "error", err)
		return err
	}
	return nil
}

// saveUndo mirrors the in-memory undo buffer to the store. Must be
// called with the mutex held.
func (s *TaskService) saveUndo(ctx context.Context) error {
	var entry *domain.UndoEntry
	if buffered, ok := s.list.PendingUndo(); ok {
		entry = &buffered
	}
	if err := s.repo.SaveUndo(ctx, entry); err != nil {
		logging.Logger.Warn("Failed to save undo buffer", "error", err)
		return err
	}
	return nil
}
