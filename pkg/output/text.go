package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/rules"
	"github.com/arthur-debert/settingsguard/pkg/types"
)

// TextRenderer writes plain text without any styling
type TextRenderer struct {
	w io.Writer
}

func (r *TextRenderer) Result(res types.Result) error {
	var b strings.Builder
	if res.IsClean() {
		b.WriteString("No conflicts or warnings\n")
		_, err := io.WriteString(r.w, b.String())
		return err
	}

	for _, c := range res.Conflicts {
		fmt.Fprintf(&b, "CONFLICT [%s] %s: %s\n", c.Severity, c.Category, strings.Join(c.ConflictingFields, ", "))
		if c.Description != "" {
			fmt.Fprintf(&b, "  %s\n", c.Description)
		}
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "WARNING [%s] %s\n", w.Severity, strings.Join(w.Combination, " + "))
		fmt.Fprintf(&b, "  %s\n", w.Message)
	}
	fmt.Fprintf(&b, "%s\n", summary(res))

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TextRenderer) Check(check types.FieldCheck) error {
	var b strings.Builder
	if !check.Disabled {
		fmt.Fprintf(&b, "%s=%s is available\n", check.Field, check.Value)
	} else {
		fmt.Fprintf(&b, "%s=%s is disabled: conflicts with %s\n",
			check.Field, check.Value, strings.Join(check.ConflictingFields, ", "))
		for _, c := range check.Conflicts {
			fmt.Fprintf(&b, "  %s: %s\n", c.Category, c.Description)
		}
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TextRenderer) Lint(issues []rules.LintIssue) error {
	var b strings.Builder
	if len(issues) == 0 {
		b.WriteString("No lint issues\n")
	}
	for _, i := range issues {
		b.WriteString(i.String() + "\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Rules writes the markdown catalogue, which reads fine as plain text
func (r *TextRenderer) Rules(rs rules.RuleSet, sources []string) error {
	_, err := io.WriteString(r.w, RulesMarkdown(rs, sources))
	return err
}
