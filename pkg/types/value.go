package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	// KindAbsent is the zero Value: the field is not set
	KindAbsent Kind = iota
	KindString
	KindBool
	KindNumber
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Value is a scalar setting: a string, a boolean or a number.
// The zero Value is absent and never satisfies a predicate.
type Value struct {
	kind Kind
	s    string
	b    bool
	n    float64
}

// String returns a string Value
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bool returns a boolean Value
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// ValueOf converts decoded data (JSON, YAML, TOML) into a Value.
// It reports false for nil and for anything that is not a scalar.
func ValueOf(v interface{}) (Value, bool) {
	switch t := v.(type) {
	case Value:
		return t, t.kind != KindAbsent
	case string:
		return String(t), true
	case bool:
		return Bool(t), true
	case float64:
		return Number(t), true
	case float32:
		return Number(float64(t)), true
	case int:
		return Number(float64(t)), true
	case int8:
		return Number(float64(t)), true
	case int16:
		return Number(float64(t)), true
	case int32:
		return Number(float64(t)), true
	case int64:
		return Number(float64(t)), true
	case uint:
		return Number(float64(t)), true
	case uint8:
		return Number(float64(t)), true
	case uint16:
		return Number(float64(t)), true
	case uint32:
		return Number(float64(t)), true
	case uint64:
		return Number(float64(t)), true
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return String(t.String()), true
		}
		return Number(n), true
	default:
		return Value{}, false
	}
}

// Kind returns which variant v holds
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the zero Value
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Str returns the string payload and whether v is a string
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// BoolValue returns the boolean payload and whether v is a boolean
func (v Value) BoolValue() (bool, bool) { return v.b, v.kind == KindBool }

// NumberValue returns the numeric payload and whether v is a number
func (v Value) NumberValue() (float64, bool) { return v.n, v.kind == KindNumber }

// String renders v the way rule values are written: "true"/"false" for
// booleans and the shortest decimal form for numbers.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	default:
		return ""
	}
}

// Float coerces v to a number. Strings are trimmed and parsed; empty
// strings, booleans, NaN and absent values are not numeric.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.n) {
			return 0, false
		}
		return v.n, true
	case KindString:
		return ParseNumber(v.s)
	default:
		return 0, false
	}
}

// Truthy reports whether v is a non-empty string, true, or a non-zero number
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return v.s != ""
	case KindBool:
		return v.b
	case KindNumber:
		return v.n != 0 && !math.IsNaN(v.n)
	default:
		return false
	}
}

// Interface returns the payload as a plain Go value (nil when absent)
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	default:
		return nil
	}
}

// MarshalJSON encodes v as its JSON scalar. JSON has no infinities or
// NaN, so non-finite numbers encode as strings ("+Inf", "-Inf", "NaN").
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindNumber && (math.IsInf(v.n, 0) || math.IsNaN(v.n)) {
		return json.Marshal(v.String())
	}
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a JSON scalar into v
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*v = Value{}
		return nil
	}
	parsed, ok := ValueOf(raw)
	if !ok {
		return fmt.Errorf("value must be a string, boolean or number, got %T", raw)
	}
	*v = parsed
	return nil
}

// ParseNumber parses s as a decimal float64 after trimming spaces.
// Empty strings, NaN and infinities are not numbers.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
