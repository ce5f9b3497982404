package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/cobrax/topics"
	"github.com/arthur-debert/settingsguard/pkg/rules"
	"github.com/arthur-debert/settingsguard/pkg/style"
	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/pterm/pterm"
)

// TerminalRenderer writes colored output for interactive terminals
type TerminalRenderer struct {
	w     io.Writer
	width int
}

func (r *TerminalRenderer) Result(res types.Result) error {
	var b strings.Builder

	if res.HasConflicts() {
		b.WriteString(style.TitleStyle.Render("Conflicts") + "\n")
		for _, c := range res.Conflicts {
			fields := make([]string, len(c.ConflictingFields))
			for i, f := range c.ConflictingFields {
				fields[i] = style.FieldStyle.Render(f)
			}
			fmt.Fprintf(&b, "%s %s %s\n", style.SeverityBadge(c.Severity),
				style.Bold(c.Category), strings.Join(fields, style.MutedStyle.Render(" ⟷ ")))
			if c.Description != "" {
				b.WriteString(style.Indent(style.MutedStyle.Render(c.Description), 2) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if res.HasWarnings() {
		b.WriteString(style.TitleStyle.Render("Warnings") + "\n")
		for _, w := range res.Warnings {
			preds := make([]string, len(w.Combination))
			for i, p := range w.Combination {
				preds[i] = style.FieldStyle.Render(p)
			}
			fmt.Fprintf(&b, "%s %s\n", style.SeverityBadge(w.Severity), strings.Join(preds, style.MutedStyle.Render(" + ")))
			b.WriteString(style.Indent(w.Message, 2) + "\n")
		}
		b.WriteString("\n")
	}

	status := style.ResultStatus(len(res.Conflicts), len(res.Warnings))
	if status == style.StatusClean {
		fmt.Fprintf(&b, "%s %s\n", style.RenderStatus(status, "OK"), "No conflicts or warnings")
	} else {
		fmt.Fprintf(&b, "%s %s\n", style.RenderStatus(status, strings.ToUpper(string(status))), summary(res))
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TerminalRenderer) Check(check types.FieldCheck) error {
	var b strings.Builder
	option := style.FieldStyle.Render(fmt.Sprintf("%s=%s", check.Field, check.Value))

	if !check.Disabled {
		fmt.Fprintf(&b, "%s %s %s\n", style.SuccessIndicator, option, "is available")
	} else {
		fields := make([]string, len(check.ConflictingFields))
		for i, f := range check.ConflictingFields {
			fields[i] = style.Bold(f)
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", style.ErrorIndicator, option,
			style.RenderStatus(style.StatusDisabled, "disabled"), "conflicts with "+strings.Join(fields, ", "))
		for _, c := range check.Conflicts {
			b.WriteString(style.Indent(fmt.Sprintf("%s %s", pterm.Gray(c.Category), c.Description), 1) + "\n")
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TerminalRenderer) Lint(issues []rules.LintIssue) error {
	var b strings.Builder
	if len(issues) == 0 {
		fmt.Fprintf(&b, "%s No lint issues\n", style.SuccessIndicator)
	}
	for _, i := range issues {
		fmt.Fprintf(&b, "%s %s %s", style.WarningIndicator,
			pterm.Gray(fmt.Sprintf("%s[%d]", i.Section, i.Index)), style.Bold(i.Rule))
		if i.Predicate != "" {
			fmt.Fprintf(&b, " %s", style.FieldStyle.Render(i.Predicate))
		}
		fmt.Fprintf(&b, ": %s\n", i.Problem)
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Rules renders the markdown catalogue with glamour, falling back to the
// raw markdown when glamour fails
func (r *TerminalRenderer) Rules(rs rules.RuleSet, sources []string) error {
	md := RulesMarkdown(rs, sources)
	_, err := io.WriteString(r.w, renderMarkdown(md, r.width))
	return err
}

func renderMarkdown(md string, width int) string {
	r := topics.NewGlamourRenderer()
	r.Width = width
	return r.Render(md, ".md")
}
