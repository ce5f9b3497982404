package types

import "sort"

// Snapshot maps field names to the current value of each setting.
// Callers own it; the validator only reads it.
type Snapshot map[string]Value

// Get returns the value of field, absent when the field is not set
func (s Snapshot) Get(field string) Value {
	if s == nil {
		return Value{}
	}
	return s[field]
}

// Clone returns a shallow copy of s; Values are immutable so this is a full copy
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	return out
}

// With returns a copy of s with field set to value. s is left untouched.
func (s Snapshot) With(field string, value Value) Snapshot {
	out := s.Clone()
	out[field] = value
	return out
}

// Merge returns a copy of s with every field of other applied on top
func (s Snapshot) Merge(other Snapshot) Snapshot {
	out := s.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Fields returns the field names in sorted order
func (s Snapshot) Fields() []string {
	fields := make([]string, 0, len(s))
	for k := range s {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// SnapshotFromMap converts decoded data into a Snapshot, returning the keys
// whose values were not scalars alongside it.
func SnapshotFromMap(m map[string]interface{}) (Snapshot, []string) {
	snap := make(Snapshot, len(m))
	var skipped []string
	for k, raw := range m {
		v, ok := ValueOf(raw)
		if !ok {
			skipped = append(skipped, k)
			continue
		}
		snap[k] = v
	}
	sort.Strings(skipped)
	return snap, skipped
}
