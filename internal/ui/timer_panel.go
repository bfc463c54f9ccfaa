package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"

	"focusflow/internal/domain"
	"focusflow/internal/services"
	"focusflow/internal/theme"
)

// TimerPanel renders the session timer: phase label, countdown clock,
// phase progress bar, session dots, and the streak line. It is a pure
// view over TimerService and StatsService; all state lives in the
// services.
type TimerPanel struct {
	bar   progress.Model
	stats *services.StatsService
	timer *services.TimerService
	width int
}

// NewTimerPanel creates a timer panel
func NewTimerPanel(timer *services.TimerService, stats *services.StatsService) *TimerPanel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
	)
	return &TimerPanel{
		bar:   bar,
		stats: stats,
		timer: timer,
	}
}

// SetWidth resizes the panel
func (p *TimerPanel) SetWidth(width int) {
	p.width = width
	barWidth := width - 4
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}
	p.bar.Width = barWidth
}

// phaseLabel maps a phase to its display name
func phaseLabel(phase domain.Phase) string {
	switch phase {
	case domain.PhaseFocus:
		return "Focus"
	case domain.PhaseShortBreak:
		return "Short break"
	case domain.PhaseLongBreak:
		return "Long break"
	case domain.PhasePaused:
		return "Paused"
	default:
		return "Ready"
	}
}

// formatClock renders a duration as mm:ss (or h:mm:ss past the hour)
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// sessionDots renders the focus sessions completed in the current cycle,
// e.g. "● ● ○ ○" for two of four.
func sessionDots(completed, perCycle int) string {
	if perCycle < 1 {
		perCycle = 1
	}
	inCycle := completed % perCycle
	if completed > 0 && inCycle == 0 {
		// The cycle just completed; show it full until the next focus starts
		inCycle = perCycle
	}

	dots := make([]string, perCycle)
	for i := range dots {
		if i < inCycle {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	return strings.Join(dots, " ")
}

// View renders the timer panel
func (p *TimerPanel) View() string {
	phase := p.timer.Phase()
	remaining := p.timer.Remaining()
	indicator := p.timer.Indicator()
	config := p.timer.Config()

	var b strings.Builder

	clockStyle := theme.IndicatorStyle(indicator)
	if phase == domain.PhasePaused {
		clockStyle = theme.PausedTimerStyle
	}

	b.WriteString(theme.PhaseLabelStyle.Render(phaseLabel(phase)))
	b.WriteString("  ")
	b.WriteString(clockStyle.Render(formatClock(remaining)))
	b.WriteString("\n")

	if phase == domain.PhaseIdle {
		b.WriteString(theme.SessionCountStyle.Render("press space to start"))
	} else {
		elapsed := p.timer.Elapsed()
		total := elapsed + remaining
		percent := 0.0
		if total > 0 {
			percent = float64(elapsed) / float64(total)
		}
		b.WriteString(p.bar.ViewAs(percent))
	}
	b.WriteString("\n")

	completed := p.timer.CompletedSessions()
	today := p.stats.TodayStat()
	b.WriteString(sessionDots(completed, config.SessionsBeforeLongBreak))
	b.WriteString(theme.SessionCountStyle.Render(
		fmt.Sprintf("  today: %d sessions, %d focus min, %+d points",
			today.SessionsCompleted, today.FocusMinutes, today.PointsNet)))

	if streak := p.stats.Lifetime().CurrentStreak; streak > 1 {
		b.WriteString("  ")
		b.WriteString(theme.StreakStyle.Render(fmt.Sprintf("%d-day streak", streak)))
	}

	return b.String()
}
