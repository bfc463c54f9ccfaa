package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"focusflow/internal/config"
	"focusflow/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run       RunCmd       `cmd:"" help:"Start the focusflow TUI (default)" default:"1"`
	Tasks     TasksCmd     `cmd:"tasks" help:"Manage tasks (list, add, edit, done, del, move, undo)"`
	Config    ConfigCmd    `cmd:"config" help:"Show or set the timer configuration"`
	Stats     StatsCmd     `cmd:"stats" help:"Show focus statistics"`
	Import    ImportCmd    `cmd:"import" help:"Import state from the JSON snapshot documents"`
	Export    ExportCmd    `cmd:"export" help:"Export state to the JSON snapshot documents"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the TUI over SSH"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play a notification sound (cross-platform)" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// GetSettings returns the loaded settings, which may be nil
func (c *CLI) GetSettings() *config.Settings {
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Settings only apply when the flag is at its default and the env
	// var is not set.
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("FOCUSFLOW_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("FOCUSFLOW_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes
	// inherit debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FOCUSFLOW_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FOCUSFLOW_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("FOCUSFLOW_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create the container AFTER logging is initialized so the GORM
	// logger never sees a nil logging.Logger
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
