package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, muted for an interviewer-facing tool
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#10B981") // Emerald
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Error     = lipgloss.Color("#EF4444") // Red
	Improve   = lipgloss.Color("#F97316") // Orange
	Highlight = lipgloss.Color("#A855F7") // Purple
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Badge = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// ScoreColor returns green for strong scores, yellow for middling and red
// for weak ones.
func ScoreColor(score int) color.Color {
	switch {
	case score >= 75:
		return Success
	case score >= 60:
		return Warning
	default:
		return Error
	}
}

// DifficultyColor maps a difficulty label to its badge color.
func DifficultyColor(label string) color.Color {
	switch label {
	case "Basic":
		return Success
	case "Intermediate":
		return Warning
	default:
		return Error
	}
}

// RecommendationColor colors a hiring recommendation.
func RecommendationColor(positive bool) color.Color {
	if positive {
		return Success
	}
	return Improve
}
