package services

import (
	"context"
	"sync"

	"focusflow/internal/domain"
	"focusflow/internal/logging"
	"focusflow/internal/ports"
)

// StatsService owns the stats aggregator. It is the single sink for
// focus-session completions and score deltas; daily bucketing uses the
// injected clock so tests control the calendar.
type StatsService struct {
	aggregator *domain.Aggregator
	clock      ports.Clock
	mu         sync.Mutex
	repo       ports.StatsStore
}

// NewStatsService creates a StatsService with the persisted snapshot
// restored as authoritative
func NewStatsService(ctx context.Context, repo ports.StatsStore, clock ports.Clock) (*StatsService, error) {
	snapshot, err := repo.LoadStats(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load stats", "error", err)
		return nil, err
	}

	return &StatsService{
		aggregator: domain.RestoreAggregator(snapshot),
		clock:      clock,
		repo:       repo,
	}, nil
}

// Today returns the current date key
func (s *StatsService) Today() string {
	return s.clock.Now().Format(domain.DateLayout)
}

// RecordFocusSession accumulates a completed focus session on today's
// bucket and updates the streak
func (s *StatsService) RecordFocusSession(focusMinutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := s.Today()
	s.aggregator.RecordFocusSession(date, focusMinutes)
	logging.Logger.Info("Recorded focus session",
		"date", date,
		"focus_minutes", focusMinutes,
		"current_streak", s.aggregator.Lifetime().CurrentStreak)
}

// RecordScoreDelta accumulates a task completion toggle on today's bucket
func (s *StatsService) RecordScoreDelta(delta domain.ScoreDelta) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := s.Today()
	s.aggregator.RecordScoreDelta(date, delta)
	logging.Logger.Debug("Recorded score delta",
		"date", date,
		"task_id", delta.TaskID,
		"points", delta.Points,
		"completing", delta.Completing)
}

// Daily returns the daily buckets in chronological order
func (s *StatsService) Daily() []domain.DailyStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aggregator.Daily()
}

// TodayStat returns today's bucket, zero-valued when nothing was
// recorded yet
func (s *StatsService) TodayStat() domain.DailyStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aggregator.DailyFor(s.Today())
}

// Lifetime returns the all-time totals
func (s *StatsService) Lifetime() domain.LifetimeStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aggregator.Lifetime()
}

// Snapshot returns the persistable form of the aggregator
func (s *StatsService) Snapshot() domain.StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aggregator.Snapshot()
}

// Checkpoint persists the current aggregator state. A failed save is
// surfaced to the caller but never rolls back the in-memory state.
func (s *StatsService) Checkpoint(ctx context.Context) error {
	snapshot := s.Snapshot()
	if err := s.repo.SaveStats(ctx, snapshot); err != nil {
		logging.Logger.Warn("Failed to checkpoint stats", "error", err)
		return err
	}
	return nil
}
