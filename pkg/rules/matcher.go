package rules

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/types"
)

// Operator is the comparison a Predicate applies
type Operator string

const (
	// OpEquals holds when the field equals the value
	OpEquals Operator = "="
	// OpGreaterThan holds when the field is numerically greater than the value
	OpGreaterThan Operator = ">"
	// OpPresent holds when the field is set to a truthy value
	OpPresent Operator = "present"
)

// Predicate is a parsed field condition such as "dailyLimits.comments:>200"
type Predicate struct {
	Field    string
	Value    string
	Operator Operator

	// Raw is the string the predicate was parsed from
	Raw string

	// rule value as a number, parsed once
	num   float64
	numOK bool
}

// ParsePredicate parses the compact predicate encoding.
// A ":>" splits field and threshold; otherwise the first ":" splits field and
// value; a string with no ":" names a field that must be truthy.
func ParsePredicate(s string) Predicate {
	p := Predicate{Raw: s}
	if i := strings.Index(s, ":>"); i >= 0 {
		p.Field, p.Value, p.Operator = s[:i], s[i+2:], OpGreaterThan
	} else if i := strings.Index(s, ":"); i >= 0 {
		p.Field, p.Value, p.Operator = s[:i], s[i+1:], OpEquals
	} else {
		p.Field, p.Operator = s, OpPresent
	}
	p.num, p.numOK = types.ParseNumber(p.Value)
	return p
}

// Valid reports whether the predicate can ever hold
func (p Predicate) Valid() bool {
	if p.Field == "" {
		return false
	}
	if p.Operator == OpGreaterThan && !p.numOK {
		return false
	}
	return true
}

// Holds evaluates the predicate against a snapshot.
// Absent fields never hold, whatever the operator.
func (p Predicate) Holds(s types.Snapshot) bool {
	if p.Field == "" {
		return false
	}
	v := s.Get(p.Field)
	if v.IsAbsent() {
		return false
	}

	switch p.Operator {
	case OpGreaterThan:
		if !p.numOK {
			return false
		}
		n, ok := v.Float()
		return ok && n > p.num
	case OpPresent:
		return v.Truthy()
	case OpEquals:
		return p.equals(v)
	default:
		return false
	}
}

func (p Predicate) equals(v types.Value) bool {
	switch v.Kind() {
	case types.KindBool:
		b, _ := v.BoolValue()
		return strconv.FormatBool(b) == p.Value
	case types.KindString:
		s, _ := v.Str()
		return s == p.Value
	case types.KindNumber:
		n, _ := v.NumberValue()
		return p.numOK && n == p.num
	default:
		return false
	}
}

// String returns the predicate in its compact encoding
func (p Predicate) String() string {
	if p.Raw != "" {
		return p.Raw
	}
	switch p.Operator {
	case OpGreaterThan:
		return p.Field + ":>" + p.Value
	case OpPresent:
		return p.Field
	default:
		return p.Field + ":" + p.Value
	}
}

// Evaluate parses predicate and evaluates it against s in one step
func Evaluate(s types.Snapshot, predicate string) bool {
	return ParsePredicate(predicate).Holds(s)
}
