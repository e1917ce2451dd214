package temperature

import (
	"math"
	"testing"

	"github.com/paveg/siunit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"integral", 24, "24.0"},
		{"fractional", 26.3, "26.3"},
		{"zero", 0, "0.0"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"negative", -40, "-40.0"},
		{"two to the 32", 1 << 32, "4294967296.0"},
		{"two to the 64", math.Ldexp(1, 64), "1.8446744073709552e+19"},
		{"largest fixed", 1e15, "1000000000000000.0"},
		{"first exponent", 1e16, "1e+16"},
		{"small fixed", 0.0001, "0.0001"},
		{"small exponent", 0.00001, "1e-05"},
		{"nan", math.NaN(), "nan"},
		{"inf", math.Inf(1), "inf"},
		{"negative inf", math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFloat(tt.value))
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "24.0\u205F\u2103", C(24).String())
	assert.Equal(t, "98.6\u205F\u2109", F(98.6).String())
	assert.Equal(t, "nan\u205F\u2103", NA().String())
}

func TestValueConversion(t *testing.T) {
	assert.InDelta(t, 37.0, F(98.6).Celsius(), 1e-9)
	assert.InDelta(t, -40.0, F(-40).Celsius(), 1e-9)
	assert.Equal(t, 0.0, F(32).Celsius())
	assert.Equal(t, 212.0, C(100).Fahrenheit())
	assert.Equal(t, 25.0, C(25).Celsius())
	assert.Equal(t, Fahrenheit, F(1).Unit())
	assert.Equal(t, 7.0, FromInt(int8(7)).Magnitude())
}

func TestValueComparison(t *testing.T) {
	assert.True(t, C(0).Equal(F(32)))
	assert.True(t, C(-1).Less(C(1)))
	assert.False(t, NA().Equal(NA()))
	assert.True(t, NA().IsNA())
	assert.False(t, C(0).IsNA())
}

func TestParseCelsius(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"14.5", 14.5},
		{"62", 62},
		{"62.0", 62},
		{"21.5\u205F\u2103", 21.5},
		{"21.5℃", 21.5},
		{"21.5°C", 21.5},
		{"21.5 C", 21.5},
		{"21.5C", 21.5},
		{"  -3.25 ℃", -3.25},
		{"nan", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseCelsius(tt.input)
			require.NoError(t, err)
			assert.Equal(t, Celsius, v.Unit())
			if math.IsNaN(tt.expected) {
				assert.True(t, v.IsNA())
				return
			}
			assert.Equal(t, tt.expected, v.Magnitude())
		})
	}
}

func TestParseCelsiusErrors(t *testing.T) {
	for _, input := range []string{"", "abc", "℃", "1.2.3"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCelsius(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidValue)
		})
	}
}

func TestParse(t *testing.T) {
	v, err := Parse("212℉")
	require.NoError(t, err)
	assert.Equal(t, F(212), v)
	assert.Equal(t, 100.0, v.Celsius())

	v, err = Parse("50 °F")
	require.NoError(t, err)
	assert.Equal(t, F(50), v)

	v, err = Parse("32F")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v.Celsius())

	v, err = Parse("18.5°C")
	require.NoError(t, err)
	assert.Equal(t, C(18.5), v)

	_, err = Parse("warmF")
	assert.ErrorIs(t, err, errors.ErrInvalidValue)

	_, err = Parse("F")
	assert.ErrorIs(t, err, errors.ErrInvalidValue)
}

func TestParseInfinity(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"INF", math.Inf(1)},
		{"-INF", math.Inf(-1)},
		{"inf", math.Inf(1)},
		{"+Inf ℃", math.Inf(1)},
		{"-inf °F", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.Magnitude())
		})
	}

	v, err := Parse("INF")
	require.NoError(t, err)
	assert.Equal(t, Celsius, v.Unit())
}

func TestUnit(t *testing.T) {
	assert.Equal(t, "celsius", Celsius.String())
	assert.Equal(t, "fahrenheit", Fahrenheit.String())
	assert.Equal(t, CelsiusGlyph, Celsius.Glyph())
	assert.Equal(t, FahrenheitGlyph, Fahrenheit.Glyph())
}
