package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/rules"
	"github.com/arthur-debert/settingsguard/pkg/types"
)

// MarkdownRenderer writes raw markdown
type MarkdownRenderer struct {
	w io.Writer
}

func (r *MarkdownRenderer) Result(res types.Result) error {
	_, err := io.WriteString(r.w, ResultMarkdown(res))
	return err
}

func (r *MarkdownRenderer) Check(check types.FieldCheck) error {
	_, err := io.WriteString(r.w, CheckMarkdown(check))
	return err
}

func (r *MarkdownRenderer) Lint(issues []rules.LintIssue) error {
	_, err := io.WriteString(r.w, LintMarkdown(issues))
	return err
}

func (r *MarkdownRenderer) Rules(rs rules.RuleSet, sources []string) error {
	_, err := io.WriteString(r.w, RulesMarkdown(rs, sources))
	return err
}

// RulesMarkdown documents a rule set: one section per conflict category
// and a table of warnings
func RulesMarkdown(rs rules.RuleSet, sources []string) string {
	var b strings.Builder
	pairs, warnings := rs.Counts()

	b.WriteString("# Rule catalogue\n\n")
	if len(sources) > 0 {
		fmt.Fprintf(&b, "Sources: %s\n\n", strings.Join(sources, ", "))
	}
	if rs.Version != "" {
		fmt.Fprintf(&b, "Version: %s\n\n", rs.Version)
	}
	fmt.Fprintf(&b, "%s, %s.\n\n",
		plural(pairs, "conflict pair", "conflict pairs"),
		plural(warnings, "warning", "warnings"))

	b.WriteString("## Conflicts\n\n")
	if len(rs.Conflicts) == 0 {
		b.WriteString("No conflict rules.\n\n")
	}
	for _, c := range rs.Conflicts {
		fmt.Fprintf(&b, "### %s (%s)\n\n", c.Category, c.EffectiveSeverity())
		if c.Description != "" {
			b.WriteString(c.Description + "\n\n")
		}
		b.WriteString("| Option | Conflicts with |\n|---|---|\n")
		for _, pair := range c.MutuallyExclusive {
			if len(pair) != 2 {
				continue
			}
			fmt.Fprintf(&b, "| `%s` | `%s` |\n", pair[0], pair[1])
		}
		b.WriteString("\n")
	}

	b.WriteString("## Warnings\n\n")
	if len(rs.Warnings) == 0 {
		b.WriteString("No warning rules.\n")
		return b.String()
	}
	b.WriteString("| Severity | Combination | Message |\n|---|---|---|\n")
	for _, w := range rs.Warnings {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", w.Severity, codeList(w.Combination, " + "), escapeCell(w.Message))
	}
	return b.String()
}

// ResultMarkdown lists the conflicts and warnings of a validation result
func ResultMarkdown(res types.Result) string {
	var b strings.Builder
	b.WriteString("# Validation result\n\n")
	if res.IsClean() {
		b.WriteString("No conflicts or warnings.\n")
		return b.String()
	}

	if res.HasConflicts() {
		b.WriteString("## Conflicts\n\n")
		for _, c := range res.Conflicts {
			fmt.Fprintf(&b, "- **%s** (%s): %s. %s\n", c.Category, c.Severity,
				codeList(c.ConflictingFields, ", "), c.Description)
		}
		b.WriteString("\n")
	}
	if res.HasWarnings() {
		b.WriteString("## Warnings\n\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "- **%s** %s: %s\n", w.Severity, codeList(w.Combination, " + "), w.Message)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s\n", summary(res))
	return b.String()
}

// CheckMarkdown describes a what-if query answer
func CheckMarkdown(check types.FieldCheck) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# `%s=%s`\n\n", check.Field, check.Value)
	if !check.Disabled {
		b.WriteString("Available: no conflicts.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Disabled: conflicts with %s.\n\n", codeList(check.ConflictingFields, ", "))
	for _, c := range check.Conflicts {
		fmt.Fprintf(&b, "- **%s**: %s\n", c.Category, c.Description)
	}
	return b.String()
}

// LintMarkdown lists lint issues
func LintMarkdown(issues []rules.LintIssue) string {
	var b strings.Builder
	b.WriteString("# Rule lint\n\n")
	if len(issues) == 0 {
		b.WriteString("No issues.\n")
		return b.String()
	}
	for _, i := range issues {
		fmt.Fprintf(&b, "- %s[%d] **%s**", i.Section, i.Index, i.Rule)
		if i.Predicate != "" {
			fmt.Fprintf(&b, " `%s`", i.Predicate)
		}
		fmt.Fprintf(&b, ": %s\n", i.Problem)
	}
	return b.String()
}

func codeList(items []string, sep string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "`" + s + "`"
	}
	return strings.Join(quoted, sep)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func summary(res types.Result) string {
	return plural(len(res.Conflicts), "conflict", "conflicts") + ", " +
		plural(len(res.Warnings), "warning", "warnings")
}
