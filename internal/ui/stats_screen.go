package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"focusflow/internal/domain"
	"focusflow/internal/theme"
)

// recentDays bounds how many daily rows the screen shows
const recentDays = 14

// StatsScreen displays lifetime totals and the recent daily history in
// a scrollable viewport.
type StatsScreen struct {
	Completed   bool
	content     string
	height      int
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
	width       int
}

// buildStatsContent builds the stats text from a snapshot
func buildStatsContent(snapshot domain.StatsSnapshot, today string) string {
	var b strings.Builder
	lifetime := snapshot.Lifetime

	b.WriteString(theme.HelpGroupStyle.Render("Lifetime") + "\n")
	b.WriteString(renderStatLine("Focus time", formatMinutes(lifetime.TotalFocusMinutes)))
	b.WriteString(renderStatLine("Sessions completed", fmt.Sprintf("%d", lifetime.TotalSessionsCompleted)))
	b.WriteString(renderStatLine("Current streak", fmt.Sprintf("%d day(s)", lifetime.CurrentStreak)))
	b.WriteString(renderStatLine("Longest streak", fmt.Sprintf("%d day(s)", lifetime.LongestStreak)))
	if lifetime.LastCompletionDate != "" {
		b.WriteString(renderStatLine("Last completion", lifetime.LastCompletionDate))
	}

	daily := snapshot.Daily
	if len(daily) > recentDays {
		daily = daily[len(daily)-recentDays:]
	}

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Recent days") + "\n")
	if len(daily) == 0 {
		b.WriteString(theme.HelpDescStyle.Render("No activity recorded yet.") + "\n")
	}
	// Newest first
	for i := len(daily) - 1; i >= 0; i-- {
		day := daily[i]
		label := day.Date
		if day.Date == today {
			label += " (today)"
		}
		value := fmt.Sprintf("%d sessions, %s focus, %d tasks, %s points",
			day.SessionsCompleted,
			formatMinutes(day.FocusMinutes),
			day.TasksCompleted,
			fmt.Sprintf("%+d", day.PointsNet))
		b.WriteString(renderStatLine(label, value))
	}

	return b.String()
}

// renderStatLine renders one aligned label/value line
func renderStatLine(label, value string) string {
	return theme.HelpKeyStyle.Render(label) + theme.HelpDescStyle.Render(value) + "\n"
}

// formatMinutes renders minutes as "3h 25m" or "25m"
func formatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// NewStatsScreen creates a stats screen from a snapshot
func NewStatsScreen(keys *KeyMap, snapshot domain.StatsSnapshot, today string) *StatsScreen {
	return &StatsScreen{
		content:  buildStatsContent(snapshot, today),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (s *StatsScreen) Init() tea.Cmd {
	s.viewport.KeyMap.Up.SetKeys("up", "k")
	s.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (s *StatsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

		// Dialog header: 4 lines, footer: 2 lines
		viewportHeight := msg.Height - 6
		if viewportHeight < 5 {
			viewportHeight = 5
		}

		s.viewport.Width = msg.Width
		s.viewport.Height = viewportHeight
		s.viewport.SetContent(s.content)
		s.initialized = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, s.keys.Application.Quit.Binding, s.keys.Application.Stats.Binding) {
			s.Completed = true
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View implements tea.Model
func (s *StatsScreen) View() string {
	if !s.initialized {
		return "Loading statistics..."
	}

	footer := theme.HelpStyle.Render("Press esc, q, or s to close • ↑↓/jk/PgUp/PgDn to scroll")
	return s.viewport.View() + "\n\n" + footer
}
