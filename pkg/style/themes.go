package style

import (
	"github.com/charmbracelet/lipgloss"
)

// The palette is built around how bad a finding is. Conflicts use
// ErrorColor; warnings use the High/Medium/Low ramp, which runs from warm
// to cool. Light values are darker so badges stay readable on white.

// Finding colors
var (
	// Conflicts and hard failures
	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#B91C1C", // Crimson
		Dark:  "#F87171",
	}

	HighColor = lipgloss.AdaptiveColor{
		Light: "#C2410C", // Burnt orange
		Dark:  "#FDBA74",
	}

	MediumColor = lipgloss.AdaptiveColor{
		Light: "#A16207", // Mustard
		Dark:  "#FDE047",
	}

	LowColor = lipgloss.AdaptiveColor{
		Light: "#0369A1", // Steel blue
		Dark:  "#7DD3FC",
	}

	// Clean results and available options
	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#15803D", // Forest
		Dark:  "#86EFAC",
	}

	// Non-failing warnings share the medium tone
	WarningColor = MediumColor
)

// Chrome colors
var (
	// Titles and field names
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#4338CA", // Indigo
		Dark:  "#A5B4FC",
	}

	// Sources and informational lines
	InfoColor = lipgloss.AdaptiveColor{
		Light: "#0F766E", // Teal
		Dark:  "#5EEAD4",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}

	TextColor = lipgloss.AdaptiveColor{
		Light: "#374151",
		Dark:  "#E5E7EB",
	}

	// Descriptions under a finding
	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}

	// Text on severity badges, inverted against the badge background
	BadgeTextColor = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#111827",
	}
)
