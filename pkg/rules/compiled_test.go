package rules

import (
	"testing"

	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRuleSet() RuleSet {
	return RuleSet{
		Conflicts: []ConflictRule{
			{
				Category:    "approval_vs_automation",
				Description: "approval blocks automation",
				MutuallyExclusive: [][]string{
					{"approvalRequired:true", "responseTiming:immediate-auto"},
					{"approvalRequired:true", "dmAutomation:full-auto"},
				},
			},
			{
				Category:          "soft",
				Description:       "soft conflict",
				Severity:          types.SeverityWarning,
				MutuallyExclusive: [][]string{{"a:1", "b:2"}},
			},
		},
		Warnings: []WarningRule{
			{
				Combination: []string{"dailyLimits.comments:>200"},
				Message:     "too many comments",
				Severity:    types.SeverityHigh,
			},
		},
	}
}

func TestCompile(t *testing.T) {
	c := Compile(sampleRuleSet())

	groups := c.Conflicts()
	require.Len(t, groups, 2)
	assert.Equal(t, "approval_vs_automation", groups[0].Category)
	assert.Equal(t, types.SeverityError, groups[0].Severity, "empty severity defaults to error")
	assert.Equal(t, types.SeverityWarning, groups[1].Severity, "warning severity is carried through")
	require.Len(t, groups[0].Pairs, 2)
	assert.Equal(t, []string{"approvalRequired", "dmAutomation"}, groups[0].Pairs[1].Fields())
	assert.Equal(t, OpEquals, groups[0].Pairs[0][1].Operator)

	warnings := c.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, OpGreaterThan, warnings[0].Predicates[0].Operator)
	assert.Equal(t, []string{"dailyLimits.comments:>200"}, warnings[0].Combination)
}

func TestCompileKeepsMalformedPairs(t *testing.T) {
	rs := RuleSet{Conflicts: []ConflictRule{{
		Category:          "broken",
		MutuallyExclusive: [][]string{{"only-one"}, {}, {":x", "y:>abc"}},
	}}}

	c := Compile(rs)

	require.Len(t, c.Conflicts()[0].Pairs, 3)
	snap := types.Snapshot{"only-one": types.Bool(true), "y": types.Number(5), "": types.String("x")}
	for _, pair := range c.Conflicts()[0].Pairs {
		assert.False(t, pair[0].Holds(snap) && pair[1].Holds(snap))
	}
}

func TestCompileDoesNotAliasInput(t *testing.T) {
	rs := sampleRuleSet()
	c := Compile(rs)

	rs.Conflicts[0].MutuallyExclusive[0][0] = "mutated:true"
	rs.Warnings[0].Combination[0] = "mutated:true"

	assert.Equal(t, "approvalRequired:true", c.Source().Conflicts[0].MutuallyExclusive[0][0])
	assert.Equal(t, "dailyLimits.comments:>200", c.Warnings()[0].Combination[0])
	assert.Equal(t, "approvalRequired", c.Conflicts()[0].Pairs[0][0].Field)
}

func TestWarningComboHolds(t *testing.T) {
	combo := WarningCombo{Predicates: []Predicate{
		ParsePredicate("engagementStyle:leader"),
		ParsePredicate("humorLevel:high"),
		ParsePredicate("controversialTopics:engage"),
	}}
	full := types.Snapshot{
		"engagementStyle":     types.String("leader"),
		"humorLevel":          types.String("high"),
		"controversialTopics": types.String("engage"),
	}

	assert.True(t, combo.Holds(full))
	for _, field := range []string{"engagementStyle", "humorLevel", "controversialTopics"} {
		assert.False(t, combo.Holds(full.With(field, types.String("other"))), "falsifying %s", field)
	}
	assert.False(t, WarningCombo{}.Holds(full), "empty combination never fires")
}

func TestNilCompiled(t *testing.T) {
	var c *Compiled
	assert.Nil(t, c.Conflicts())
	assert.Nil(t, c.Warnings())
	assert.Equal(t, RuleSet{}, c.Source())
}

func TestMergeAndCounts(t *testing.T) {
	a := sampleRuleSet()
	b := RuleSet{Version: "2", Warnings: []WarningRule{{Combination: []string{"x"}, Message: "m", Severity: types.SeverityLow}}}

	merged := Merge(a, b)

	assert.Equal(t, "2", merged.Version)
	assert.Equal(t, "approval_vs_automation", merged.Conflicts[0].Category)
	require.Len(t, merged.Warnings, 2)
	assert.Equal(t, "too many comments", merged.Warnings[0].Message)

	pairs, warnings := merged.Counts()
	assert.Equal(t, 3, pairs)
	assert.Equal(t, 2, warnings)
}
