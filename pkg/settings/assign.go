package settings

import (
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/errors"
	"github.com/arthur-debert/settingsguard/pkg/types"
)

// ParseValue types a command-line value: true and false become booleans,
// numbers become numbers, quoted text and everything else stays a string.
func ParseValue(raw string) types.Value {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return types.String(s[1 : len(s)-1])
	}
	switch s {
	case "true":
		return types.Bool(true)
	case "false":
		return types.Bool(false)
	}
	if n, ok := types.ParseNumber(s); ok {
		return types.Number(n)
	}
	return types.String(s)
}

// ParseAssignment splits "field=value" and types the value with ParseValue
func ParseAssignment(s string) (string, types.Value, error) {
	field, raw, ok := strings.Cut(s, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return "", types.Value{}, errors.Newf(errors.ErrInvalidInput,
			"invalid assignment %q, want field=value", s)
	}
	return field, ParseValue(raw), nil
}

// ApplyAssignments returns a copy of base with every assignment applied in order
func ApplyAssignments(base types.Snapshot, assignments []string) (types.Snapshot, error) {
	out := base.Clone()
	for _, a := range assignments {
		field, value, err := ParseAssignment(a)
		if err != nil {
			return nil, err
		}
		out[field] = value
	}
	return out, nil
}
