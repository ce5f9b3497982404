package rules

import "fmt"

// LintIssue describes a rule that can never fire, or a part of it that
// can never hold
type LintIssue struct {
	Section   string `json:"section"` // conflicts|warnings
	Index     int    `json:"index"`
	Rule      string `json:"rule"` // category or warning message
	Predicate string `json:"predicate,omitempty"`
	Problem   string `json:"problem"`
}

// String formats the issue for terminal output
func (i LintIssue) String() string {
	if i.Predicate != "" {
		return fmt.Sprintf("%s[%d] %q: %s: %s", i.Section, i.Index, i.Rule, i.Predicate, i.Problem)
	}
	return fmt.Sprintf("%s[%d] %q: %s", i.Section, i.Index, i.Rule, i.Problem)
}

// Lint reports predicates and rules in rs that can never match.
// Evaluation stays silent about them; this is the rule author's view.
func Lint(rs RuleSet) []LintIssue {
	var issues []LintIssue

	for i, rule := range rs.Conflicts {
		for j, pair := range rule.MutuallyExclusive {
			if len(pair) != 2 {
				issues = append(issues, LintIssue{
					Section: "conflicts", Index: i, Rule: rule.Category,
					Problem: fmt.Sprintf("pair %d has %d predicates, want 2", j, len(pair)),
				})
				continue
			}
			left, right := ParsePredicate(pair[0]), ParsePredicate(pair[1])
			issues = appendPredicateIssues(issues, "conflicts", i, rule.Category, left, right)
			if contradicts(left, right) {
				issues = append(issues, LintIssue{
					Section: "conflicts", Index: i, Rule: rule.Category,
					Predicate: pair[0] + " / " + pair[1],
					Problem:   "both sides require different values of the same field and can never hold together",
				})
			}
		}
	}

	for i, rule := range rs.Warnings {
		if len(rule.Combination) == 0 {
			issues = append(issues, LintIssue{
				Section: "warnings", Index: i, Rule: rule.Message,
				Problem: "empty combination never fires",
			})
			continue
		}
		preds := make([]Predicate, 0, len(rule.Combination))
		for _, raw := range rule.Combination {
			preds = append(preds, ParsePredicate(raw))
		}
		issues = appendPredicateIssues(issues, "warnings", i, rule.Message, preds...)
		for a := 0; a < len(preds); a++ {
			for b := a + 1; b < len(preds); b++ {
				if contradicts(preds[a], preds[b]) {
					issues = append(issues, LintIssue{
						Section: "warnings", Index: i, Rule: rule.Message,
						Predicate: preds[a].Raw + " / " + preds[b].Raw,
						Problem:   "combination requires different values of the same field and can never fire",
					})
				}
			}
		}
	}

	return issues
}

func appendPredicateIssues(issues []LintIssue, section string, index int, rule string, preds ...Predicate) []LintIssue {
	for _, p := range preds {
		switch {
		case p.Field == "":
			issues = append(issues, LintIssue{
				Section: section, Index: index, Rule: rule, Predicate: p.Raw,
				Problem: "missing field name",
			})
		case p.Operator == OpGreaterThan && !p.numOK:
			issues = append(issues, LintIssue{
				Section: section, Index: index, Rule: rule, Predicate: p.Raw,
				Problem: fmt.Sprintf("threshold %q is not a number", p.Value),
			})
		}
	}
	return issues
}

// contradicts reports whether two equality predicates pin one field to
// different values. Numeric values compare as numbers, since a Number
// field matches "5" and "5.0" alike.
func contradicts(a, b Predicate) bool {
	if a.Field == "" || a.Field != b.Field || a.Operator != OpEquals || b.Operator != OpEquals {
		return false
	}
	if a.numOK && b.numOK {
		return a.num != b.num
	}
	return a.Value != b.Value
}
