package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusflow/internal/config"
	"focusflow/internal/logging"
	"focusflow/internal/services"
	"focusflow/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"5"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	// Apply RunCmd-specific settings when the flag is at its default
	if cli.settings != nil {
		if r.ErrorClearDelay == services.DefaultErrorClearDelay {
			if cli.settings.ErrorClearDelay != nil && *cli.settings.ErrorClearDelay > 0 {
				r.ErrorClearDelay = *cli.settings.ErrorClearDelay
			}
		}
	}

	// Validate key bindings if configured
	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	logging.Logger.Info("Starting focusflow TUI")
	p := tea.NewProgram(
		ui.NewModel(
			time.Duration(r.ErrorClearDelay)*time.Second,
			r.Dev,
			keysConfig,
			cli.Container.TimerService,
			cli.Container.TaskService,
			cli.Container.StatsService,
		),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
