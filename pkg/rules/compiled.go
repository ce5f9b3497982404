package rules

import (
	"github.com/arthur-debert/settingsguard/pkg/logging"
	"github.com/arthur-debert/settingsguard/pkg/types"
)

// PredicatePair is one mutually exclusive pair of a conflict rule
type PredicatePair [2]Predicate

// Fields returns the field names of both sides, in rule order
func (pp PredicatePair) Fields() []string {
	return []string{pp[0].Field, pp[1].Field}
}

// ConflictGroup is a compiled ConflictRule
type ConflictGroup struct {
	Category    string
	Description string
	Severity    types.Severity
	Pairs       []PredicatePair
}

// WarningCombo is a compiled WarningRule
type WarningCombo struct {
	Combination []string
	Predicates  []Predicate
	Message     string
	Severity    types.Severity
}

// Holds reports whether every predicate of the combination holds
func (w WarningCombo) Holds(s types.Snapshot) bool {
	if len(w.Predicates) == 0 {
		return false
	}
	for _, p := range w.Predicates {
		if !p.Holds(s) {
			return false
		}
	}
	return true
}

// Compiled is a rule set with every predicate parsed.
// It is never modified after Compile returns and is safe for concurrent use.
type Compiled struct {
	source    RuleSet
	conflicts []ConflictGroup
	warnings  []WarningCombo
}

// Compile parses every predicate of rs once. Malformed predicates are kept
// and simply never hold; Compile does not fail.
func Compile(rs RuleSet) *Compiled {
	logger := logging.GetLogger("rules.compile")

	c := &Compiled{source: cloneRuleSet(rs)}
	invalid := 0

	for _, rule := range rs.Conflicts {
		group := ConflictGroup{
			Category:    rule.Category,
			Description: rule.Description,
			Severity:    rule.EffectiveSeverity(),
			Pairs:       make([]PredicatePair, 0, len(rule.MutuallyExclusive)),
		}
		for _, pair := range rule.MutuallyExclusive {
			var left, right string
			if len(pair) > 0 {
				left = pair[0]
			}
			if len(pair) > 1 {
				right = pair[1]
			}
			pp := PredicatePair{ParsePredicate(left), ParsePredicate(right)}
			if len(pair) != 2 || !pp[0].Valid() || !pp[1].Valid() {
				invalid++
			}
			group.Pairs = append(group.Pairs, pp)
		}
		c.conflicts = append(c.conflicts, group)
	}

	for _, rule := range rs.Warnings {
		combo := WarningCombo{
			Combination: append([]string(nil), rule.Combination...),
			Predicates:  make([]Predicate, 0, len(rule.Combination)),
			Message:     rule.Message,
			Severity:    rule.Severity,
		}
		for _, raw := range rule.Combination {
			p := ParsePredicate(raw)
			if !p.Valid() {
				invalid++
			}
			combo.Predicates = append(combo.Predicates, p)
		}
		c.warnings = append(c.warnings, combo)
	}

	pairs, warnings := rs.Counts()
	logger.Debug().
		Int("conflictGroups", len(c.conflicts)).
		Int("conflictPairs", pairs).
		Int("warnings", warnings).
		Int("unsatisfiable", invalid).
		Msg("Compiled rule set")

	return c
}

// Conflicts returns the compiled conflict groups in declaration order.
// The slice is shared; callers must not modify it.
func (c *Compiled) Conflicts() []ConflictGroup {
	if c == nil {
		return nil
	}
	return c.conflicts
}

// Warnings returns the compiled warning rules in declaration order.
// The slice is shared; callers must not modify it.
func (c *Compiled) Warnings() []WarningCombo {
	if c == nil {
		return nil
	}
	return c.warnings
}

// Source returns a copy of the rule set c was compiled from
func (c *Compiled) Source() RuleSet {
	if c == nil {
		return RuleSet{}
	}
	return cloneRuleSet(c.source)
}

func cloneRuleSet(rs RuleSet) RuleSet {
	out := RuleSet{Version: rs.Version}
	for _, c := range rs.Conflicts {
		cc := c
		cc.MutuallyExclusive = make([][]string, len(c.MutuallyExclusive))
		for i, pair := range c.MutuallyExclusive {
			cc.MutuallyExclusive[i] = append([]string(nil), pair...)
		}
		out.Conflicts = append(out.Conflicts, cc)
	}
	for _, w := range rs.Warnings {
		ww := w
		ww.Combination = append([]string(nil), w.Combination...)
		out.Warnings = append(out.Warnings, ww)
	}
	return out
}
