package form

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		lenient float64
		strict  float64
	}{
		{in: "", lenient: 0, strict: 0},
		{in: "abc", lenient: 0, strict: 0},
		{in: "42", lenient: 42, strict: 42},
		{in: "-1.5", lenient: -1.5, strict: -1.5},
		{in: "+2", lenient: 2, strict: 2},
		{in: ".5", lenient: 0.5, strict: 0.5},
		{in: "5.", lenient: 5, strict: 5},
		{in: "12abc", lenient: 12, strict: 0},
		{in: " 7 ", lenient: 7, strict: 7},
		{in: "\t3", lenient: 3, strict: 3},
		{in: "1e3", lenient: 1000, strict: 1000},
		{in: "2.5E-1", lenient: 0.25, strict: 0.25},
		{in: "1e", lenient: 1, strict: 0},
		{in: "1e+", lenient: 1, strict: 0},
		{in: "0x10", lenient: 0, strict: 0},
		{in: "1_000", lenient: 1, strict: 0},
		{in: "1,5", lenient: 1, strict: 0},
		{in: "-", lenient: 0, strict: 0},
		{in: ".", lenient: 0, strict: 0},
		{in: "NaN", lenient: 0, strict: 0},
		{in: "inf", lenient: 0, strict: 0},
		{in: "3.2.1", lenient: 3.2, strict: 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.lenient, ParseValue(tc.in, Lenient), "lenient")
			assert.Equal(t, tc.strict, ParseValue(tc.in, Strict), "strict")
		})
	}
}

func TestParseValueInfinity(t *testing.T) {
	assert.True(t, math.IsInf(ParseValue("Infinity", Lenient), 1))
	assert.True(t, math.IsInf(ParseValue("-Infinityxyz", Lenient), -1))
	assert.Equal(t, 0.0, ParseValue("-Infinityxyz", Strict))
	assert.True(t, math.IsInf(ParseValue("1e400", Strict), 1))
	assert.Equal(t, 0.0, ParseValue("1e-400", Lenient))
}

func TestParseModeFromString(t *testing.T) {
	m, err := ParseModeFromString("")
	require.NoError(t, err)
	assert.Equal(t, Lenient, m)

	m, err = ParseModeFromString(" STRICT ")
	require.NoError(t, err)
	assert.Equal(t, Strict, m)

	_, err = ParseModeFromString("loose")
	assert.Error(t, err)

	assert.Equal(t, "strict", Strict.String())
	assert.Equal(t, "ParseMode(7)", ParseMode(7).String())
}
