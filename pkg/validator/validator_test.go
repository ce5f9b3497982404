package validator

import (
	"testing"

	"github.com/arthur-debert/settingsguard/pkg/rules"
	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() *rules.Compiled {
	return rules.Compile(rules.RuleSet{
		Conflicts: []rules.ConflictRule{
			{
				Category:    "approval_vs_automation",
				Description: "approval blocks automation",
				MutuallyExclusive: [][]string{
					{"approvalRequired:true", "responseTiming:immediate-auto"},
					{"approvalRequired:true", "dmAutomation:full-auto"},
				},
			},
			{
				Category:          "observer",
				Description:       "observers stay quiet",
				MutuallyExclusive: [][]string{{"engagementStyle:observer", "autoFollow:true"}},
			},
			{
				Category:          "broken",
				Description:       "bad data never fires",
				MutuallyExclusive: [][]string{{":true", "approvalRequired:true"}, {"only"}},
			},
		},
		Warnings: []rules.WarningRule{
			{
				Combination: []string{"engagementStyle:leader", "responseTiming:manual-review"},
				Message:     "leaders need fast replies",
				Severity:    types.SeverityMedium,
			},
			{
				Combination: []string{"dailyLimits.comments:>200"},
				Message:     "too many comments",
				Severity:    types.SeverityHigh,
			},
			{
				Combination: []string{"engagementStyle:leader", "humorLevel:high", "controversialTopics:engage"},
				Message:     "risky voice",
				Severity:    types.SeverityHigh,
			},
		},
	})
}

func TestValidateConflictRequiresBothSides(t *testing.T) {
	v := New(testRules())

	both := types.Snapshot{
		"approvalRequired": types.Bool(true),
		"responseTiming":   types.String("immediate-auto"),
	}

	conflicts := v.ValidateConflicts(both)
	want := []types.Conflict{{
		ConflictingFields: []string{"approvalRequired", "responseTiming"},
		Category:          "approval_vs_automation",
		Description:       "approval blocks automation",
		Severity:          types.SeverityError,
	}}
	if diff := cmp.Diff(want, conflicts); diff != "" {
		t.Errorf("ValidateConflicts() mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, v.ValidateConflicts(both.With("approvalRequired", types.Bool(false))))
	assert.Empty(t, v.ValidateConflicts(both.With("responseTiming", types.String("delayed"))))
}

func TestValidateReportsEveryFiringPair(t *testing.T) {
	v := New(testRules())
	snap := types.Snapshot{
		"approvalRequired": types.Bool(true),
		"responseTiming":   types.String("immediate-auto"),
		"dmAutomation":     types.String("full-auto"),
		"engagementStyle":  types.String("observer"),
		"autoFollow":       types.Bool(true),
	}

	conflicts := v.ValidateConflicts(snap)
	require.Len(t, conflicts, 3)
	assert.Equal(t, []string{"approvalRequired", "responseTiming"}, conflicts[0].ConflictingFields)
	assert.Equal(t, []string{"approvalRequired", "dmAutomation"}, conflicts[1].ConflictingFields)
	assert.Equal(t, "observer", conflicts[2].Category)
}

func TestValidateWarningRequiresFullCombination(t *testing.T) {
	v := New(testRules())
	full := types.Snapshot{
		"engagementStyle":     types.String("leader"),
		"humorLevel":          types.String("high"),
		"controversialTopics": types.String("engage"),
	}

	warnings := v.ValidateWarnings(full)
	require.Len(t, warnings, 1)
	assert.Equal(t, "risky voice", warnings[0].Message)
	assert.Equal(t, []string{"engagementStyle:leader", "humorLevel:high", "controversialTopics:engage"}, warnings[0].Combination)

	for field := range full {
		withOut := full.Clone()
		delete(withOut, field)
		assert.Empty(t, v.ValidateWarnings(withOut), "removing %s should suppress the warning", field)
		assert.Empty(t, v.ValidateWarnings(full.With(field, types.String("other"))), "falsifying %s", field)
	}
}

func TestEngagementStyleWarningScenario(t *testing.T) {
	v := New(testRules())
	res := v.Validate(types.Snapshot{
		"engagementStyle": types.String("leader"),
		"responseTiming":  types.String("manual-review"),
	})

	assert.Empty(t, res.Conflicts)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, []string{"engagementStyle:leader", "responseTiming:manual-review"}, res.Warnings[0].Combination)
	assert.Equal(t, types.SeverityMedium, res.Warnings[0].Severity)
}

func TestNumericThresholdScenario(t *testing.T) {
	v := New(testRules())
	tests := []struct {
		comments float64
		fires    bool
	}{
		{250, true},
		{210, true},
		{200.5, true},
		{200, false},
		{150, false},
	}

	for _, tt := range tests {
		res := v.Validate(types.Snapshot{"dailyLimits.comments": types.Number(tt.comments)})
		assert.Equal(t, tt.fires, len(res.Warnings) == 1, "comments=%v", tt.comments)
	}

	res := v.Validate(types.Snapshot{"dailyLimits.comments": types.String("unlimited")})
	assert.Empty(t, res.Warnings, "non numeric value never crosses a threshold")
}

func TestValidateEmptySnapshot(t *testing.T) {
	v := New(testRules())
	for _, snap := range []types.Snapshot{nil, {}} {
		res := v.Validate(snap)
		assert.Empty(t, res.Conflicts)
		assert.Empty(t, res.Warnings)
		assert.True(t, res.IsClean())
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	v := New(testRules())
	snap := types.Snapshot{
		"approvalRequired":     types.Bool(true),
		"responseTiming":       types.String("immediate-auto"),
		"dmAutomation":         types.String("full-auto"),
		"engagementStyle":      types.String("leader"),
		"dailyLimits.comments": types.Number(900),
	}

	first := v.Validate(snap)
	second := v.Validate(snap)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Validate() not idempotent (-first +second):\n%s", diff)
	}
	assert.Len(t, first.Conflicts, 2)
	assert.Len(t, first.Warnings, 1)
}

func TestValidateDoesNotMutateSnapshot(t *testing.T) {
	v := New(testRules())
	snap := types.Snapshot{"approvalRequired": types.Bool(true)}
	before := snap.Clone()

	v.Validate(snap)
	v.WouldCreateConflict(snap, "responseTiming", types.String("immediate-auto"))
	v.ConflictingFields(snap, "dmAutomation", types.String("full-auto"))
	v.IsFieldDisabled(snap, "responseTiming", types.String("immediate-auto"))

	assert.Equal(t, before, snap)
}

func TestNoDeduplicationAcrossRules(t *testing.T) {
	c := rules.Compile(rules.RuleSet{Conflicts: []rules.ConflictRule{
		{Category: "a", Description: "same", MutuallyExclusive: [][]string{{"x:1", "y:1"}}},
		{Category: "a", Description: "same", MutuallyExclusive: [][]string{{"x:1", "y:1"}}},
	}})
	v := New(c)

	conflicts := v.ValidateConflicts(types.Snapshot{"x": types.String("1"), "y": types.Number(1)})
	require.Len(t, conflicts, 2)
	assert.Equal(t, conflicts[0], conflicts[1])
}

func TestConflictSeverityCarriedThrough(t *testing.T) {
	c := rules.Compile(rules.RuleSet{Conflicts: []rules.ConflictRule{
		{Category: "soft", Severity: types.SeverityWarning, MutuallyExclusive: [][]string{{"x:1", "y:1"}}},
	}})

	conflicts := New(c).ValidateConflicts(types.Snapshot{"x": types.String("1"), "y": types.String("1")})
	require.Len(t, conflicts, 1)
	assert.Equal(t, types.SeverityWarning, conflicts[0].Severity)
}

func TestNilRules(t *testing.T) {
	res := New(nil).Validate(types.Snapshot{"approvalRequired": types.Bool(true)})
	assert.True(t, res.IsClean())
}
