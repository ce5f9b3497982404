package validator

import "github.com/arthur-debert/settingsguard/pkg/types"

// WouldCreateConflict returns the conflicts s would have with field set to
// value. s itself is not modified.
func (v *Validator) WouldCreateConflict(s types.Snapshot, field string, value types.Value) []types.Conflict {
	return v.ValidateConflicts(s.With(field, value))
}

// ConflictingFields returns the fields that would conflict with field set to
// value, excluding field itself, in the order the conflicts are reported
func (v *Validator) ConflictingFields(s types.Snapshot, field string, value types.Value) []string {
	var out []string
	seen := map[string]bool{}
	for _, c := range v.WouldCreateConflict(s, field, value) {
		for _, f := range c.ConflictingFields {
			if f == field {
				continue
			}
			if v.dedupe {
				if seen[f] {
					continue
				}
				seen[f] = true
			}
			out = append(out, f)
		}
	}
	return out
}

// IsFieldDisabled reports whether choosing value for field would create a
// conflict, which is what a form uses to gray out an option
func (v *Validator) IsFieldDisabled(s types.Snapshot, field string, value types.Value) bool {
	return len(v.WouldCreateConflict(s, field, value)) > 0
}
