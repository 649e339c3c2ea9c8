package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVietnamese(t *testing.T) {
	f, err := New("vi-VN")
	require.NoError(t, err)

	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: 30, want: "30"},
		{in: 1234.5, want: "1.234,5"},
		{in: 1234567, want: "1.234.567"},
		{in: 0.1 + 0.2, want: "0,3"},
		{in: 0.0625, want: "0,063"},
		{in: 1.0625, want: "1,063"},
		{in: 1.0005, want: "1"},
		{in: math.Inf(1), want: "∞"},
		{in: math.Inf(-1), want: "-∞"},
		{in: math.NaN(), want: "NaN"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, f.Format(tc.in), "Format(%v)", tc.in)
	}
}

func TestFormatEnglish(t *testing.T) {
	f := MustNew("en-US")
	assert.Equal(t, "1,234,567.891", f.Format(1234567.891))
	assert.Equal(t, "10", f.Format(10))
}

func TestRoundHalfAway(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0.0625, want: 0.063},
		{in: -0.0625, want: -0.063},
		{in: 1.0625, want: 1.063},
		{in: 0.0005, want: 0.001},
		// 1.0005 is stored just below the tie
		{in: 1.0005, want: 1},
		{in: 2.5, want: 2.5},
		{in: 1e300, want: 1e300},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, roundHalfAway(tc.in, MaxFractionDigits), "roundHalfAway(%v)", tc.in)
	}
}

func TestFormatEnglishTies(t *testing.T) {
	f := MustNew("en-US")
	assert.Equal(t, "0.063", f.Format(0.0625))
	assert.Equal(t, "1.063", f.Format(1.0625))
}

func TestNewDefaultsAndErrors(t *testing.T) {
	f, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLocale, f.Locale())

	_, err = New("not a locale!")
	assert.Error(t, err)
}
