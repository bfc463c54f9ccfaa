package theme

import (
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/domain"
)

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Timer styles
var (
	BreakTimerStyle = lipgloss.NewStyle().
			Foreground(ColorBreak).
			Bold(true)

	FocusTimerStyle = lipgloss.NewStyle().
			Foreground(ColorFocus).
			Bold(true)

	IdleTimerStyle = lipgloss.NewStyle().
			Foreground(ColorIdle)

	PausedTimerStyle = lipgloss.NewStyle().
				Foreground(ColorPaused).
				Bold(true)

	PhaseLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	SessionCountStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	StreakStyle = lipgloss.NewStyle().
			Foreground(ColorStreak).
			Bold(true)

	WarningTimerStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)
)

// Task list styles
var (
	CompletedTaskStyle = lipgloss.NewStyle().
				Foreground(ColorCompleted).
				Strikethrough(true)

	PointsNegativeStyle = lipgloss.NewStyle().
				Foreground(ColorPointsNegative)

	PointsPositiveStyle = lipgloss.NewStyle().
				Foreground(ColorPointsPositive)

	SelectedTaskStyle = lipgloss.NewStyle().
				Background(ColorSelected).
				Foreground(ColorHighlight)

	TaskStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// IndicatorStyle returns the timer style for a display indicator
func IndicatorStyle(indicator domain.Indicator) lipgloss.Style {
	switch indicator {
	case domain.IndicatorFocus:
		return FocusTimerStyle
	case domain.IndicatorBreak:
		return BreakTimerStyle
	case domain.IndicatorWarning:
		return WarningTimerStyle
	default:
		return IdleTimerStyle
	}
}

// PointsStyle returns the style for a signed point value
func PointsStyle(points int) lipgloss.Style {
	if points < 0 {
		return PointsNegativeStyle
	}
	return PointsPositiveStyle
}
