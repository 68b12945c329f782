package gradient

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatShortest(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "zero", input: 0, want: "0"},
		{name: "negative zero", input: math.Copysign(0, -1), want: "0"},
		{name: "integer", input: 50, want: "50"},
		{name: "fraction", input: 12.5, want: "12.5"},
		{name: "third", input: 100.0 / 3, want: "33.333333333333336"},
		{name: "negative", input: -2.25, want: "-2.25"},
		{name: "tiny", input: 1.5e-7, want: "1.5e-7"},
		{name: "huge", input: 2e21, want: "2e+21"},
		{name: "nan", input: math.NaN(), want: "NaN"},
		{name: "inf", input: math.Inf(1), want: "Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatShortest(tt.input))
		})
	}
}

func TestFormatPrecision(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "zero", input: 0, want: "0.00"},
		{name: "one", input: 1, want: "1.00"},
		{name: "half", input: 0.5, want: "0.500"},
		{name: "third", input: 1.0 / 3, want: "0.333"},
		{name: "two thirds", input: 2.0 / 3, want: "0.667"},
		{name: "percent", input: 100.0 / 3, want: "33.3"},
		{name: "exact tie rounds up", input: 3.125, want: "3.13"},
		{name: "below tie rounds down", input: 1.005, want: "1.00"},
		{name: "carry into next digit", input: 9.996, want: "10.0"},
		{name: "hundred", input: 100, want: "100"},
		{name: "large uses exponent", input: 1234, want: "1.23e+3"},
		{name: "small uses exponent", input: 1e-7, want: "1.00e-7"},
		{name: "small fixed", input: 0.00012345, want: "0.000123"},
		{name: "negative", input: -0.125, want: "-0.125"},
		{name: "nan", input: math.NaN(), want: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrecision(tt.input, 3))
		})
	}
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "NaN", NaN.String())
	assert.Equal(t, "NaN", Maybe(5, false).String())
	assert.Equal(t, "5", Maybe(5, true).String())
	assert.Equal(t, "0.250", Precision(0.25, 3).String())
	assert.Equal(t, "NaN", Float(math.NaN()).String())
}
