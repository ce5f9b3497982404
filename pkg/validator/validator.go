package validator

import (
	"github.com/arthur-debert/settingsguard/pkg/logging"
	"github.com/arthur-debert/settingsguard/pkg/rules"
	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/rs/zerolog"
)

// Validator applies a compiled rule set to settings snapshots.
// It is immutable and safe for concurrent use.
type Validator struct {
	rules  *rules.Compiled
	dedupe bool
	logger zerolog.Logger
}

// Option configures a Validator
type Option func(*Validator)

// WithDedupeConflictingFields controls whether ConflictingFields drops
// repeated field names. It is on by default.
func WithDedupeConflictingFields(dedupe bool) Option {
	return func(v *Validator) { v.dedupe = dedupe }
}

// New creates a validator for the given rules. A nil rule set validates
// nothing and reports nothing.
func New(compiled *rules.Compiled, opts ...Option) *Validator {
	v := &Validator{
		rules:  compiled,
		dedupe: true,
		logger: logging.GetLogger("validator"),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewDefault creates a validator for the embedded default rules
func NewDefault(opts ...Option) *Validator {
	return New(rules.Default(), opts...)
}

// Rules returns the compiled rule set the validator evaluates
func (v *Validator) Rules() *rules.Compiled {
	return v.rules
}

// Validate runs every conflict rule and every warning rule against s
func (v *Validator) Validate(s types.Snapshot) types.Result {
	result := types.Result{
		Conflicts: v.ValidateConflicts(s),
		Warnings:  v.ValidateWarnings(s),
	}
	v.logger.Debug().
		Int("fields", len(s)).
		Int("conflicts", len(result.Conflicts)).
		Int("warnings", len(result.Warnings)).
		Msg("Validated settings")
	return result
}

// ValidateConflicts reports every mutually exclusive pair whose two sides
// hold, in rule order. A rule with several firing pairs reports each one.
func (v *Validator) ValidateConflicts(s types.Snapshot) []types.Conflict {
	var conflicts []types.Conflict
	for _, group := range v.rules.Conflicts() {
		for _, pair := range group.Pairs {
			if !pair[0].Holds(s) || !pair[1].Holds(s) {
				continue
			}
			v.logger.Trace().
				Str("category", group.Category).
				Str("left", pair[0].Raw).
				Str("right", pair[1].Raw).
				Msg("Conflict pair fired")
			conflicts = append(conflicts, types.Conflict{
				ConflictingFields: pair.Fields(),
				Category:          group.Category,
				Description:       group.Description,
				Severity:          group.Severity,
			})
		}
	}
	return conflicts
}

// ValidateWarnings reports every warning rule whose whole combination
// holds, in rule order
func (v *Validator) ValidateWarnings(s types.Snapshot) []types.Warning {
	var warnings []types.Warning
	for _, combo := range v.rules.Warnings() {
		if !combo.Holds(s) {
			continue
		}
		v.logger.Trace().
			Strs("combination", combo.Combination).
			Msg("Warning fired")
		warnings = append(warnings, types.Warning{
			Combination: append([]string(nil), combo.Combination...),
			Message:     combo.Message,
			Severity:    combo.Severity,
		})
	}
	return warnings
}
