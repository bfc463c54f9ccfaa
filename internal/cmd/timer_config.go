package cmd

import (
	"context"
	"fmt"
	"time"
)

// ConfigCmd shows or sets the timer configuration
type ConfigCmd struct {
	Focus      int `help:"Focus minutes (0 = keep current)" default:"0"`
	LongBreak  int `help:"Long break minutes (0 = keep current)" default:"0"`
	Sessions   int `help:"Focus sessions before a long break (0 = keep current)" default:"0"`
	ShortBreak int `help:"Short break minutes (0 = keep current)" default:"0"`
}

// Run shows the configuration, applying any requested changes first
func (c *ConfigCmd) Run(cli *CLI) error {
	timer := cli.Container.TimerService

	if c.Focus != 0 || c.ShortBreak != 0 || c.LongBreak != 0 || c.Sessions != 0 {
		config := timer.Config()
		if c.Focus != 0 {
			config.FocusDuration = time.Duration(c.Focus) * time.Minute
		}
		if c.ShortBreak != 0 {
			config.ShortBreakDuration = time.Duration(c.ShortBreak) * time.Minute
		}
		if c.LongBreak != 0 {
			config.LongBreakDuration = time.Duration(c.LongBreak) * time.Minute
		}
		if c.Sessions != 0 {
			config.SessionsBeforeLongBreak = c.Sessions
		}

		if err := timer.SetConfig(context.Background(), config); err != nil {
			return fmt.Errorf("failed to update timer config: %w", err)
		}
		fmt.Println("Timer configuration updated")
	}

	config := timer.Config()
	fmt.Printf("Focus:                    %d min\n", int(config.FocusDuration/time.Minute))
	fmt.Printf("Short break:              %d min\n", int(config.ShortBreakDuration/time.Minute))
	fmt.Printf("Long break:               %d min\n", int(config.LongBreakDuration/time.Minute))
	fmt.Printf("Sessions before long break: %d\n", config.SessionsBeforeLongBreak)
	return nil
}
