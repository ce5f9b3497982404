package validator

import (
	"sync"

	"github.com/arthur-debert/settingsguard/pkg/types"
)

// Session holds an editable snapshot and memoizes its validation result
// until the snapshot changes. It is safe for concurrent use.
type Session struct {
	v *Validator

	mu       sync.RWMutex
	snapshot types.Snapshot
	cached   *types.Result
}

// NewSession starts a session from a copy of initial
func NewSession(v *Validator, initial types.Snapshot) *Session {
	return &Session{v: v, snapshot: initial.Clone()}
}

// Set changes one field and drops the cached result
func (s *Session) Set(field string, value types.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = s.snapshot.With(field, value)
	s.cached = nil
}

// Unset removes a field and drops the cached result
func (s *Session) Unset(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snapshot.Clone()
	delete(next, field)
	s.snapshot = next
	s.cached = nil
}

// Merge applies every field of changes and drops the cached result
func (s *Session) Merge(changes types.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = s.snapshot.Merge(changes)
	s.cached = nil
}

// Snapshot returns a copy of the current snapshot
func (s *Session) Snapshot() types.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Result returns the validation result for the current snapshot, computing
// it at most once per change. The lists are shared with the cache and must
// not be modified.
func (s *Session) Result() types.Result {
	s.mu.RLock()
	if s.cached != nil {
		r := *s.cached
		s.mu.RUnlock()
		return r
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil {
		r := s.v.Validate(s.snapshot)
		s.cached = &r
	}
	return *s.cached
}

// WouldCreateConflict answers the query against the current snapshot
func (s *Session) WouldCreateConflict(field string, value types.Value) []types.Conflict {
	return s.v.WouldCreateConflict(s.current(), field, value)
}

// ConflictingFields answers the query against the current snapshot
func (s *Session) ConflictingFields(field string, value types.Value) []string {
	return s.v.ConflictingFields(s.current(), field, value)
}

// IsFieldDisabled answers the query against the current snapshot
func (s *Session) IsFieldDisabled(field string, value types.Value) bool {
	return s.v.IsFieldDisabled(s.current(), field, value)
}

// current returns the snapshot without copying. Snapshots are replaced,
// never written in place, so the map is safe to read after unlocking.
func (s *Session) current() types.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
