package cmd

import "fmt"

// StatsCmd shows focus statistics
type StatsCmd struct {
	Days int `help:"Number of recent days to show" default:"7"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	stats := cli.Container.StatsService
	lifetime := stats.Lifetime()

	fmt.Println("Lifetime")
	fmt.Printf("  Focus minutes:      %d\n", lifetime.TotalFocusMinutes)
	fmt.Printf("  Sessions completed: %d\n", lifetime.TotalSessionsCompleted)
	fmt.Printf("  Current streak:     %d day(s)\n", lifetime.CurrentStreak)
	fmt.Printf("  Longest streak:     %d day(s)\n", lifetime.LongestStreak)
	if lifetime.LastCompletionDate != "" {
		fmt.Printf("  Last completion:    %s\n", lifetime.LastCompletionDate)
	}

	daily := stats.Daily()
	if s.Days > 0 && len(daily) > s.Days {
		daily = daily[len(daily)-s.Days:]
	}
	if len(daily) == 0 {
		return nil
	}

	fmt.Println("\nRecent days")
	for i := len(daily) - 1; i >= 0; i-- {
		day := daily[i]
		fmt.Printf("  %s  %2d sessions  %4d focus min  %2d tasks  %+d points\n",
			day.Date, day.SessionsCompleted, day.FocusMinutes, day.TasksCompleted, day.PointsNet)
	}
	return nil
}
