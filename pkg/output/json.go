package output

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/settingsguard/pkg/rules"
	"github.com/arthur-debert/settingsguard/pkg/types"
)

// JSONRenderer writes indented JSON documents
type JSONRenderer struct {
	w io.Writer
}

// ruleCatalogue is the JSON shape of `rules list`
type ruleCatalogue struct {
	Sources []string `json:"sources"`
	rules.RuleSet
}

// lintReport is the JSON shape of `rules lint`
type lintReport struct {
	Issues []rules.LintIssue `json:"issues"`
}

func (r *JSONRenderer) Result(res types.Result) error {
	return r.encode(res)
}

func (r *JSONRenderer) Check(check types.FieldCheck) error {
	return r.encode(check)
}

func (r *JSONRenderer) Lint(issues []rules.LintIssue) error {
	if issues == nil {
		issues = []rules.LintIssue{}
	}
	return r.encode(lintReport{Issues: issues})
}

func (r *JSONRenderer) Rules(rs rules.RuleSet, sources []string) error {
	if sources == nil {
		sources = []string{}
	}
	return r.encode(ruleCatalogue{Sources: sources, RuleSet: rs})
}

func (r *JSONRenderer) encode(v interface{}) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
