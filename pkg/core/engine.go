package core

import (
	"os"
	"time"

	"github.com/arthur-debert/settingsguard/pkg/config"
	"github.com/arthur-debert/settingsguard/pkg/logging"
	"github.com/arthur-debert/settingsguard/pkg/paths"
	"github.com/arthur-debert/settingsguard/pkg/rules"
	"github.com/arthur-debert/settingsguard/pkg/validator"
)

// SourceBuiltin names the embedded rule set in Engine.Sources
const SourceBuiltin = "builtin"

// EngineOptions are the per-invocation rule choices layered over the config
type EngineOptions struct {
	// RuleFiles are loaded after every configured source
	RuleFiles []string
	// NoDefaults drops the built-in rules even when the config includes them
	NoDefaults bool
}

// Engine is an assembled rule set and the validator built from it
type Engine struct {
	Validator *validator.Validator
	RuleSet   rules.RuleSet
	// Sources lists where the rules came from, in merge order
	Sources []string
}

// NewEngine assembles the effective rule set described by cfg and opts
func NewEngine(cfg *config.Config, opts EngineOptions) (*Engine, error) {
	logger := logging.GetLogger("core.engine")
	defer logging.LogDuration(time.Now(), "assemble-rules")
	if cfg == nil {
		cfg = config.Get()
	}

	var sets []rules.RuleSet
	var sources []string

	if cfg.Rules.IncludeDefaults && !opts.NoDefaults {
		sets = append(sets, rules.DefaultRuleSet())
		sources = append(sources, SourceBuiltin)
	}

	if cfg.Rules.ScanUserDir {
		dir := paths.RulesDir()
		if _, err := os.Stat(dir); err == nil {
			rs, err := rules.LoadDir(dir)
			if err != nil {
				return nil, err
			}
			sets = append(sets, rs)
			sources = append(sources, dir)
		}
	}

	files := append(append([]string{}, cfg.Rules.Files...), opts.RuleFiles...)
	for _, f := range files {
		rs, err := rules.LoadFile(paths.ExpandHome(f))
		if err != nil {
			return nil, err
		}
		sets = append(sets, rs)
		sources = append(sources, f)
	}

	merged := rules.Merge(sets...)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	pairs, warnings := merged.Counts()
	logger.Info().
		Strs("sources", sources).
		Int("conflictPairs", pairs).
		Int("warnings", warnings).
		Msg("Rule store assembled")

	v := validator.New(rules.Compile(merged),
		validator.WithDedupeConflictingFields(cfg.Query.DedupeConflictingFields))

	return &Engine{Validator: v, RuleSet: merged, Sources: sources}, nil
}

// Lint reports suspicious rules in the assembled rule set
func (e *Engine) Lint() []rules.LintIssue {
	return rules.Lint(e.RuleSet)
}
