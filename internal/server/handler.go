package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"focusflow/internal/adapters/storage"
	"focusflow/internal/config"
	"focusflow/internal/logging"
	"focusflow/internal/ports"
	"focusflow/internal/services"
	"focusflow/internal/ui"
)

// sessionModel wraps ui.Model to handle resource cleanup
type sessionModel struct {
	*ui.Model
	repo      ports.StateRepository
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check for quit message to trigger cleanup
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if err := s.repo.Close(); err != nil {
			logging.Logger.Error("Failed to close database for SSH session",
				"error", err,
				"session_id", s.sessionID,
				"duration", duration.String())
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	ctx := context.Background()

	// Each session opens its own handle on the shared database
	repo, err := storage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	// Remote sessions have no speaker on the host worth ringing
	statsService, err := services.NewStatsService(ctx, repo, ports.SystemClock())
	if err != nil {
		repo.Close()
		return errorModel{err}, nil
	}
	timerService, err := services.NewTimerService(ctx, repo, statsService, nil)
	if err != nil {
		repo.Close()
		return errorModel{err}, nil
	}
	taskService, err := services.NewTaskService(ctx, repo, statsService)
	if err != nil {
		repo.Close()
		return errorModel{err}, nil
	}

	errorClearDelay := 5 * time.Second
	if s.settings.ErrorClearDelay != nil {
		errorClearDelay = time.Duration(*s.settings.ErrorClearDelay) * time.Second
	}

	keysConfig := s.settings.Keys
	if err := keysConfig.Validate(ui.GetValidKeyNames()); err != nil {
		logging.Logger.Warn("Ignoring invalid key bindings for SSH session",
			"error", err,
			"session_id", sessionID)
		keysConfig = nil
	}

	// SSH mode never uses dev mode
	model := ui.NewModel(errorClearDelay, false, keysConfig, timerService, taskService, statsService)

	wrappedModel := &sessionModel{
		Model:     model,
		repo:      repo,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
