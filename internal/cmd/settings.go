package cmd

import (
	"fmt"

	"focusflow/internal/ui"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys  SettingsKeysCmd  `cmd:"keys" help:"List configurable key binding names"`
	Sound SettingsSoundCmd `cmd:"sound" help:"Show or set whether notification sounds play"`
}

// SettingsSoundCmd shows or sets the sound setting
type SettingsSoundCmd struct {
	Enabled *bool `help:"Enable or disable notification sounds"`
}

// Run executes the sound command
func (s *SettingsSoundCmd) Run(cli *CLI) error {
	settings := cli.Container.SettingsService

	if s.Enabled != nil {
		if err := settings.SetSoundEnabled(*s.Enabled); err != nil {
			return fmt.Errorf("failed to update sound setting: %w", err)
		}
	}

	if settings.SoundEnabled() {
		fmt.Println("Sound: enabled")
	} else {
		fmt.Println("Sound: disabled")
	}
	return nil
}

// SettingsKeysCmd lists the key binding names settings.json can override
type SettingsKeysCmd struct{}

// Run executes the keys command
func (s *SettingsKeysCmd) Run(cli *CLI) error {
	fmt.Println("Configurable key bindings (settings.json \"keys\" object):")
	for _, name := range ui.GetValidKeyNames() {
		def := ui.GetKeyDefinition(name)
		fmt.Printf("  %-14s default: %-16v %s\n", name, def.Defaults, def.Help)
	}
	return nil
}
