package services

import (
	"fmt"

	"focusflow/internal/config"
	"focusflow/internal/logging"
)

// DefaultErrorClearDelay is how long UI errors stay visible, in seconds
const DefaultErrorClearDelay = 5

// SettingsService reads and updates $FOCUSFLOW_HOME/settings.json
type SettingsService struct{}

// NewSettingsService creates a new SettingsService
func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// SoundEnabled reports whether notification sounds are enabled.
// Defaults to true when unset.
func (s *SettingsService) SoundEnabled() bool {
	settings, err := config.LoadSettings()
	if err != nil {
		logging.Logger.Warn("Failed to load settings, using default", "error", err)
		return true
	}
	if settings.SoundEnabled == nil {
		return true
	}
	return *settings.SoundEnabled
}

// SetSoundEnabled updates the sound setting
func (s *SettingsService) SetSoundEnabled(enabled bool) error {
	logging.Logger.Info("Setting sound enabled", "enabled", enabled)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	settings.SoundEnabled = &enabled
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// ErrorClearDelay returns how long UI errors stay visible, in seconds
func (s *SettingsService) ErrorClearDelay() int {
	settings, err := config.LoadSettings()
	if err != nil {
		logging.Logger.Warn("Failed to load settings, using default", "error", err)
		return DefaultErrorClearDelay
	}
	if settings.ErrorClearDelay == nil || *settings.ErrorClearDelay <= 0 {
		return DefaultErrorClearDelay
	}
	return *settings.ErrorClearDelay
}

// KeyBindings returns the configured key binding overrides
func (s *SettingsService) KeyBindings() config.KeyBindingsConfig {
	settings, err := config.LoadSettings()
	if err != nil {
		logging.Logger.Warn("Failed to load settings, using default key bindings", "error", err)
		return nil
	}
	return settings.Keys
}
