package style

import (
	"github.com/pterm/pterm"
)

// Status is the overall outcome shown on summary lines
type Status string

const (
	StatusClean     Status = "clean"     // No conflicts or warnings
	StatusConflict  Status = "conflict"  // At least one conflict
	StatusWarning   Status = "warning"   // Warnings only
	StatusDisabled  Status = "disabled"  // Option would create a conflict
	StatusAvailable Status = "available" // Option can be chosen
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusClean, StatusAvailable:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusConflict:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case StatusWarning:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusDisabled:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderStatus renders a padded status label
func RenderStatus(status Status, label string) string {
	return StatusStyle(status).Sprint(" " + label + " ")
}

// ResultStatus picks the summary status for a validation outcome
func ResultStatus(conflicts, warnings int) Status {
	switch {
	case conflicts > 0:
		return StatusConflict
	case warnings > 0:
		return StatusWarning
	default:
		return StatusClean
	}
}
