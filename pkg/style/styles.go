package style

import (
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// FieldStyle highlights setting names and predicates
	FieldStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	badgeStyle = lipgloss.NewStyle().
			Foreground(BadgeTextColor).
			Bold(true).
			Padding(0, 1)
)

// Indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
)

// SeverityColor returns the color for a severity
func SeverityColor(sev types.Severity) lipgloss.TerminalColor {
	switch sev {
	case types.SeverityError:
		return ErrorColor
	case types.SeverityWarning, types.SeverityHigh:
		return HighColor
	case types.SeverityMedium:
		return MediumColor
	case types.SeverityLow:
		return LowColor
	default:
		return MutedColor
	}
}

// SeverityStyle returns the foreground style for a severity
func SeverityStyle(sev types.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeverityColor(sev)).Bold(true)
}

// SeverityBadge renders the severity name as an upper-case badge
func SeverityBadge(sev types.Severity) string {
	return badgeStyle.Background(SeverityColor(sev)).Render(strings.ToUpper(string(sev)))
}

// Indent pads every line of s by level steps of two spaces
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
