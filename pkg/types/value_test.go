package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name     string
		in       interface{}
		wantKind Kind
		wantStr  string
		wantOK   bool
	}{
		{"string", "leader", KindString, "leader", true},
		{"bool", true, KindBool, "true", true},
		{"float", 2.5, KindNumber, "2.5", true},
		{"int", 250, KindNumber, "250", true},
		{"int64 from toml", int64(7), KindNumber, "7", true},
		{"uint8", uint8(3), KindNumber, "3", true},
		{"json number", json.Number("12"), KindNumber, "12", true},
		{"nil", nil, KindAbsent, "", false},
		{"slice", []interface{}{"a"}, KindAbsent, "", false},
		{"map", map[string]interface{}{}, KindAbsent, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ValueOf(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKind, v.Kind())
			assert.Equal(t, tt.wantStr, v.String())
		})
	}
}

func TestValueFloat(t *testing.T) {
	tests := []struct {
		name   string
		v      Value
		want   float64
		wantOK bool
	}{
		{"number", Number(210), 210, true},
		{"numeric string", String("200"), 200, true},
		{"padded numeric string", String(" 12.5 "), 12.5, true},
		{"empty string", String(""), 0, false},
		{"word", String("lots"), 0, false},
		{"bool", Bool(true), 0, false},
		{"nan", Number(math.NaN()), 0, false},
		{"infinity string", String("inf"), 0, false},
		{"absent", Value{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Float()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueTruthy(t *testing.T) {
	assert.True(t, String("x").Truthy())
	assert.False(t, String("").Truthy())
	assert.True(t, Bool(true).Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.True(t, Number(-1).Truthy())
	assert.False(t, Number(0).Truthy())
	assert.False(t, Value{}.Truthy())
}

func TestValueJSON(t *testing.T) {
	snap := Snapshot{
		"engagementStyle":      String("leader"),
		"approvalRequired":     Bool(true),
		"dailyLimits.comments": Number(250),
	}

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"engagementStyle":"leader","approvalRequired":true,"dailyLimits.comments":250}`, string(data))

	var back Snapshot
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, snap, back)

	var v Value
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &v))
	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	assert.True(t, v.IsAbsent())
}

func TestParseNumber(t *testing.T) {
	n, ok := ParseNumber("5")
	assert.True(t, ok)
	assert.Equal(t, 5.0, n)

	_, ok = ParseNumber("NaN")
	assert.False(t, ok)

	_, ok = ParseNumber("five")
	assert.False(t, ok)

	for _, s := range []string{"Inf", "+Inf", "-inf", "Infinity", " infinity "} {
		_, ok = ParseNumber(s)
		assert.False(t, ok, s)
	}

	// overflow reports an error from strconv
	_, ok = ParseNumber("1e400")
	assert.False(t, ok)
}

func TestValueJSONNonFinite(t *testing.T) {
	data, err := json.Marshal(Number(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, `"+Inf"`, string(data))

	data, err = json.Marshal(map[string]Value{"a": Number(math.Inf(-1)), "b": Number(math.NaN())})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "-Inf", "b": "NaN"}`, string(data))
}
