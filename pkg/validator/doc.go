// Package validator evaluates agent behavior settings against a compiled
// rule set.
//
// Validation is a pure function of (snapshot, rules): it never mutates the
// snapshot, keeps no state between calls, and never fails. Rules that cannot
// match simply do not fire.
//
// The what-if queries (WouldCreateConflict, ConflictingFields,
// IsFieldDisabled) build a hypothetical snapshot with one field changed and
// run the same conflict evaluation on it. There is no separate code path for
// them, so a query can never disagree with validating the changed snapshot.
//
// Session wraps a Validator for callers that keep an editable snapshot, such
// as a form, and want the last result memoized between changes.
package validator
