package services

import (
	"context"
	"sync"
	"time"

	"focusflow/internal/adapters/sound"
	"focusflow/internal/domain"
	"focusflow/internal/logging"
	"focusflow/internal/ports"
)

// TimerService drives the session engine. Commands and ticks mutate
// under one mutex so a phase auto-advance can never interleave with a
// concurrent pause or stop.
type TimerService struct {
	engine      *domain.Engine
	mu          sync.Mutex
	repo        ports.TimerConfigStore
	soundPlayer ports.SoundPlayer
	stats       *StatsService
}

// NewTimerService creates a TimerService. The stored configuration is
// loaded when present, otherwise the standard 25/5/30 defaults apply.
func NewTimerService(
	ctx context.Context,
	repo ports.TimerConfigStore,
	stats *StatsService,
	soundPlayer ports.SoundPlayer,
) (*TimerService, error) {
	config, found, err := repo.LoadTimerConfig(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load timer config", "error", err)
		return nil, err
	}
	if !found {
		config = domain.DefaultTimerConfig()
	}

	return &TimerService{
		engine:      domain.NewEngine(config),
		repo:        repo,
		soundPlayer: soundPlayer,
		stats:       stats,
	}, nil
}

// Start begins a focus phase from Idle. Reports whether the timer
// started; starting while running is a no-op.
func (s *TimerService) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.engine.Start() {
		return false
	}
	logging.Logger.Info("Focus phase started",
		"focus_duration", s.engine.Config().FocusDuration)
	s.playSound(sound.EventSessionStart)
	return true
}

// Pause freezes the running phase
func (s *TimerService) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Pause()
}

// Resume continues a paused phase
func (s *TimerService) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Resume()
}

// Stop resets the engine to Idle, keeping the session count and all
// persisted history
func (s *TimerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Stop()
	logging.Logger.Info("Timer stopped")
}

// Tick advances the running phase. A completed focus phase is recorded
// in the stats aggregator and triggers a notification sound; breaks
// only trigger the sound.
func (s *TimerService) Tick(delta time.Duration) (domain.PhaseCompletion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	completion, done := s.engine.Tick(delta)
	if !done {
		return domain.PhaseCompletion{}, false
	}

	logging.Logger.Info("Phase completed",
		"phase", completion.Completed,
		"next", completion.Next,
		"focus_sessions", completion.FocusSessions)

	if completion.Completed == domain.PhaseFocus {
		s.stats.RecordFocusSession(int(completion.Duration / time.Minute))
		s.playSound(sound.EventFocusComplete)
	} else {
		s.playSound(sound.EventBreakComplete)
	}

	return completion, true
}

// SetConfig validates and stores a new configuration. A change while a
// phase is running takes effect at the next phase entry.
func (s *TimerService) SetConfig(ctx context.Context, config domain.TimerConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.SetConfig(config); err != nil {
		return err
	}

	if err := s.repo.SaveTimerConfig(ctx, config); err != nil {
		logging.Logger.Warn("Failed to save timer config", "error", err)
		return err
	}

	logging.Logger.Info("Timer config updated",
		"focus", config.FocusDuration,
		"short_break", config.ShortBreakDuration,
		"long_break", config.LongBreakDuration,
		"sessions_before_long_break", config.SessionsBeforeLongBreak)
	return nil
}

// Checkpoint persists the stats the timer has accumulated
func (s *TimerService) Checkpoint(ctx context.Context) error {
	return s.stats.Checkpoint(ctx)
}

// Phase returns the current phase
func (s *TimerService) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Phase()
}

// Remaining returns the time left in the current phase
func (s *TimerService) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Remaining()
}

// Elapsed returns the time spent in the current phase
func (s *TimerService) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Elapsed()
}

// CompletedSessions returns the number of focus sessions completed
func (s *TimerService) CompletedSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.CompletedSessions()
}

// Indicator returns the display state for the current phase
func (s *TimerService) Indicator() domain.Indicator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Indicator()
}

// Config returns the active configuration
func (s *TimerService) Config() domain.TimerConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Config()
}

// playSound plays an event sound without failing the operation
func (s *TimerService) playSound(eventType string) {
	if s.soundPlayer == nil {
		return
	}
	if err := s.soundPlayer.PlaySoundForEvent(eventType); err != nil {
		logging.Logger.Warn("Failed to play sound", "event", eventType, "error", err)
	}
}
