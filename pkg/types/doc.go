// Package types defines the values shared by the rule store, the validator
// and its callers: the scalar Value union, the Snapshot of form settings,
// severities, and the Conflict and Warning results.
package types
