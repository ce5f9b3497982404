package rules

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestParsePredicate(t *testing.T) {
	tests := []struct {
		in        string
		wantField string
		wantValue string
		wantOp    Operator
	}{
		{"a:>5", "a", "5", OpGreaterThan},
		{"a:true", "a", "true", OpEquals},
		{"a", "a", "", OpPresent},
		{"dailyLimits.comments:>200", "dailyLimits.comments", "200", OpGreaterThan},
		{"responseTiming:immediate-auto", "responseTiming", "immediate-auto", OpEquals},
		{"schedule:09:00", "schedule", "09:00", OpEquals},
		{"a:", "a", "", OpEquals},
		{":x", "", "x", OpEquals},
		{"", "", "", OpPresent},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			p := ParsePredicate(tt.in)
			assert.Equal(t, tt.wantField, p.Field)
			assert.Equal(t, tt.wantValue, p.Value)
			assert.Equal(t, tt.wantOp, p.Operator)
			assert.Equal(t, tt.in, p.Raw)
		})
	}
}

func TestGreaterThanOperator(t *testing.T) {
	for _, x := range []float64{-10, 0, 4.999, 5, 5.0001, 6, 1e9} {
		snap := types.Snapshot{"a": types.Number(x)}
		assert.Equal(t, x > 5, Evaluate(snap, "a:>5"), "x=%v", x)
	}

	t.Run("numeric strings are coerced", func(t *testing.T) {
		assert.True(t, Evaluate(types.Snapshot{"a": types.String("6")}, "a:>5"))
		assert.False(t, Evaluate(types.Snapshot{"a": types.String("5")}, "a:>5"))
	})

	t.Run("non numeric snapshot values never hold", func(t *testing.T) {
		for _, v := range []types.Value{types.String("many"), types.String(""), types.Bool(true)} {
			assert.False(t, Evaluate(types.Snapshot{"a": v}, "a:>5"), "value %v", v)
		}
	})

	t.Run("non numeric threshold never holds", func(t *testing.T) {
		assert.False(t, Evaluate(types.Snapshot{"a": types.Number(100)}, "a:>lots"))
		assert.False(t, Evaluate(types.Snapshot{"a": types.Number(100)}, "a:>"))
	})
}

func TestBooleanCoercion(t *testing.T) {
	assert.True(t, Evaluate(types.Snapshot{"flag": types.Bool(true)}, "flag:true"))
	assert.False(t, Evaluate(types.Snapshot{"flag": types.Bool(false)}, "flag:true"))
	assert.True(t, Evaluate(types.Snapshot{"flag": types.Bool(false)}, "flag:false"))
	assert.False(t, Evaluate(types.Snapshot{"flag": types.Bool(true)}, "flag:TRUE"))
}

func TestEqualityByKind(t *testing.T) {
	tests := []struct {
		name  string
		value types.Value
		pred  string
		want  bool
	}{
		{"string match", types.String("leader"), "style:leader", true},
		{"string mismatch", types.String("Leader"), "style:leader", false},
		{"string looks boolean", types.String("true"), "style:true", true},
		{"number match", types.Number(3), "style:3", true},
		{"number match decimal form", types.Number(3), "style:3.0", true},
		{"number mismatch", types.Number(3), "style:4", false},
		{"number against word", types.Number(3), "style:three", false},
		{"empty string equals empty value", types.String(""), "style:", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(types.Snapshot{"style": tt.value}, tt.pred))
		})
	}
}

func TestPresentOperator(t *testing.T) {
	assert.True(t, Evaluate(types.Snapshot{"autoFollow": types.Bool(true)}, "autoFollow"))
	assert.False(t, Evaluate(types.Snapshot{"autoFollow": types.Bool(false)}, "autoFollow"))
	assert.True(t, Evaluate(types.Snapshot{"signature": types.String("-- bot")}, "signature"))
	assert.False(t, Evaluate(types.Snapshot{"signature": types.String("")}, "signature"))
	assert.False(t, Evaluate(types.Snapshot{"limit": types.Number(0)}, "limit"))
}

func TestMissingFieldNeverMatches(t *testing.T) {
	snap := types.Snapshot{"other": types.String("z")}
	for _, pred := range []string{"z", "z:", "z:value", "z:true", "z:>-1000", "z:>0"} {
		assert.False(t, Evaluate(snap, pred), pred)
		assert.False(t, Evaluate(nil, pred), pred)
	}
}

func TestEmptyFieldNeverMatches(t *testing.T) {
	snap := types.Snapshot{"": types.String("x")}
	assert.False(t, Evaluate(snap, ":x"))
	assert.False(t, Evaluate(snap, ""))
	assert.False(t, ParsePredicate(":x").Valid())
}

func TestPredicateString(t *testing.T) {
	assert.Equal(t, "a:>5", ParsePredicate("a:>5").String())
	assert.Equal(t, "a:>5", Predicate{Field: "a", Value: "5", Operator: OpGreaterThan}.String())
	assert.Equal(t, "a:b", Predicate{Field: "a", Value: "b", Operator: OpEquals}.String())
	assert.Equal(t, "a", Predicate{Field: "a", Operator: OpPresent}.String())
}
