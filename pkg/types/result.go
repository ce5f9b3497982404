package types

import "encoding/json"

// Conflict reports one mutually-exclusive pair whose two predicates both hold
type Conflict struct {
	ConflictingFields []string `json:"conflictingFields"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	Severity          Severity `json:"severity"`
}

// Warning reports a risky combination whose predicates all hold.
// Combination carries the raw predicate strings, for display.
type Warning struct {
	Combination []string `json:"combination"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
}

// Result is the output of a full validation pass
type Result struct {
	Conflicts []Conflict `json:"conflicts"`
	Warnings  []Warning  `json:"warnings"`
}

// HasConflicts reports whether any conflict fired
func (r Result) HasConflicts() bool { return len(r.Conflicts) > 0 }

// HasWarnings reports whether any warning fired
func (r Result) HasWarnings() bool { return len(r.Warnings) > 0 }

// IsClean reports whether nothing fired
func (r Result) IsClean() bool { return !r.HasConflicts() && !r.HasWarnings() }

// WarningsAtLeast returns the warnings at or above min
func (r Result) WarningsAtLeast(min Severity) []Warning {
	var out []Warning
	for _, w := range r.Warnings {
		if w.Severity.AtLeast(min) {
			out = append(out, w)
		}
	}
	return out
}

// MarshalJSON keeps empty lists as [] rather than null
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	p := plain(r)
	if p.Conflicts == nil {
		p.Conflicts = []Conflict{}
	}
	if p.Warnings == nil {
		p.Warnings = []Warning{}
	}
	return json.Marshal(p)
}

// FieldCheck answers whether one option would be disabled in a form
type FieldCheck struct {
	Field             string     `json:"field"`
	Value             Value      `json:"value"`
	Disabled          bool       `json:"disabled"`
	ConflictingFields []string   `json:"conflictingFields"`
	Conflicts         []Conflict `json:"conflicts"`
}
