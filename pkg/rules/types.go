package rules

import "github.com/arthur-debert/settingsguard/pkg/types"

// RuleSet is the authoring form of the rule store, as read from a rule file
type RuleSet struct {
	Version   string         `json:"version,omitempty"`
	Conflicts []ConflictRule `json:"conflicts" validate:"dive"`
	Warnings  []WarningRule  `json:"warnings" validate:"dive"`
}

// ConflictRule groups mutually exclusive predicate pairs under a category
type ConflictRule struct {
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`

	// Severity defaults to error when empty
	Severity types.Severity `json:"severity,omitempty" validate:"omitempty,conflict_severity"`

	// Each pair holds exactly two predicate strings
	MutuallyExclusive [][]string `json:"mutually_exclusive" validate:"dive,len=2"`
}

// WarningRule fires when every predicate in Combination holds
type WarningRule struct {
	Combination []string       `json:"combination" validate:"min=1"`
	Message     string         `json:"message" validate:"required"`
	Severity    types.Severity `json:"severity" validate:"required,warning_severity"`
}

// EffectiveSeverity returns the rule's severity, error when unset
func (r ConflictRule) EffectiveSeverity() types.Severity {
	if r.Severity == "" {
		return types.SeverityError
	}
	return r.Severity
}

// Merge concatenates rule sets in order. Earlier sets keep their position,
// so results stay in declaration order across files.
func Merge(sets ...RuleSet) RuleSet {
	var out RuleSet
	for _, s := range sets {
		out.Conflicts = append(out.Conflicts, s.Conflicts...)
		out.Warnings = append(out.Warnings, s.Warnings...)
		if s.Version != "" {
			out.Version = s.Version
		}
	}
	return out
}

// Counts returns the number of conflict pairs and warning rules
func (rs RuleSet) Counts() (pairs, warnings int) {
	for _, c := range rs.Conflicts {
		pairs += len(c.MutuallyExclusive)
	}
	return pairs, len(rs.Warnings)
}
