package rules

import (
	"testing"

	"github.com/arthur-debert/settingsguard/pkg/errors"
	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSetValidate(t *testing.T) {
	require.NoError(t, sampleRuleSet().Validate())
	require.NoError(t, RuleSet{}.Validate())

	tests := []struct {
		name string
		rs   RuleSet
	}{
		{
			name: "missing category",
			rs: RuleSet{Conflicts: []ConflictRule{{
				MutuallyExclusive: [][]string{{"a:1", "b:1"}},
			}}},
		},
		{
			name: "pair of three",
			rs: RuleSet{Conflicts: []ConflictRule{{
				Category:          "c",
				MutuallyExclusive: [][]string{{"a:1", "b:1", "c:1"}},
			}}},
		},
		{
			name: "bad conflict severity",
			rs: RuleSet{Conflicts: []ConflictRule{{
				Category: "c", Severity: types.SeverityHigh,
			}}},
		},
		{
			name: "empty combination",
			rs: RuleSet{Warnings: []WarningRule{{
				Message: "m", Severity: types.SeverityLow,
			}}},
		},
		{
			name: "bad warning severity",
			rs: RuleSet{Warnings: []WarningRule{{
				Combination: []string{"a:1"}, Message: "m", Severity: types.SeverityError,
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rs.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrRulesInvalid))
			assert.NotEmpty(t, errors.GetErrorDetails(err)["problems"])
		})
	}
}

func TestRuleSetValidateSeverityTags(t *testing.T) {
	rs := RuleSet{Conflicts: []ConflictRule{{
		Category: "soft", Severity: types.SeverityWarning,
		MutuallyExclusive: [][]string{{"a:1", "b:1"}},
	}}}
	require.NoError(t, rs.Validate())

	rs.Conflicts[0].Severity = types.SeverityLow
	err := rs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"conflict_severity"`)

	rs = RuleSet{Warnings: []WarningRule{{
		Combination: []string{"a:1"}, Message: "m", Severity: types.SeverityWarning,
	}}}
	err = rs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"warning_severity"`)
}
