package rules

import (
	_ "embed"
	"sync"
)

//go:embed embedded/default_rules.json
var defaultRulesJSON []byte

var (
	defaultOnce     sync.Once
	defaultRuleSet  RuleSet
	defaultCompiled *Compiled
)

func loadDefaults() {
	rs, err := Parse(defaultRulesJSON, FormatJSON)
	if err != nil {
		// The embedded rule set is checked by tests; failing here is a build defect.
		panic("settingsguard: embedded default rules are invalid: " + err.Error())
	}
	defaultRuleSet = rs
	defaultCompiled = Compile(rs)
}

// DefaultRuleSet returns a copy of the embedded default rule set
func DefaultRuleSet() RuleSet {
	defaultOnce.Do(loadDefaults)
	return cloneRuleSet(defaultRuleSet)
}

// Default returns the embedded default rule set, compiled once per process
func Default() *Compiled {
	defaultOnce.Do(loadDefaults)
	return defaultCompiled
}

// DefaultRulesJSON returns the raw embedded rule document
func DefaultRulesJSON() []byte {
	return append([]byte(nil), defaultRulesJSON...)
}
