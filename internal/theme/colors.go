package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Timer phase colors
const (
	ColorBreak   Color = "2"   // Green - break phases
	ColorFocus   Color = "1"   // Red - focus phase
	ColorIdle    Color = "3"   // Yellow - idle, awaiting start
	ColorPaused  Color = "8"   // Gray - paused
	ColorWarning Color = "214" // Orange - phase nearly over
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Task list colors
const (
	ColorCompleted      Color = "8"   // Gray - completed task text
	ColorPointsNegative Color = "1"   // Red - negative points
	ColorPointsPositive Color = "2"   // Green - positive points
	ColorSelected       Color = "237" // Dark gray - selected row background
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorSpinner   Color = "205" // Pink
	ColorStreak    Color = "226" // Yellow - streak counter
)
