package types

import (
	"fmt"
	"strings"
)

// Severity grades a Conflict or Warning
type Severity string

// Warning severities
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Conflict severities. Shipped rules only use SeverityError; SeverityWarning
// is accepted and carried through unchanged.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// severityRank orders severities for thresholds, low to error
var severityRank = map[Severity]int{
	SeverityLow:     1,
	SeverityMedium:  2,
	SeverityHigh:    3,
	SeverityWarning: 3,
	SeverityError:   4,
}

// IsWarningSeverity reports whether s is valid on a warning rule
func (s Severity) IsWarningSeverity() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// IsConflictSeverity reports whether s is valid on a conflict rule
func (s Severity) IsConflictSeverity() bool {
	return s == SeverityError || s == SeverityWarning
}

// AtLeast reports whether s is at or above min. Unknown severities rank lowest.
func (s Severity) AtLeast(min Severity) bool {
	return severityRank[s] >= severityRank[min]
}

// ParseSeverity parses a severity name, case-insensitively
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := severityRank[sev]; !ok {
		return "", fmt.Errorf("unknown severity: %s", s)
	}
	return sev, nil
}
