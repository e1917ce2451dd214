// Package temperature provides the scalar temperature value stored in temperature arrays.
//
// A Value is a float64 magnitude tagged with a Unit. Arrays always store Celsius
// magnitudes; Fahrenheit values are converted when they are parsed into an array,
// never afterwards.
package temperature

import (
	"math"
	"strconv"
	"strings"

	"github.com/paveg/siunit/internal/errors"
	"golang.org/x/exp/constraints"
)

// Unit identifies the temperature scale of a Value.
type Unit uint8

const (
	Celsius Unit = iota
	Fahrenheit
)

// Display glyphs: a medium mathematical space (U+205F) followed by the unit sign.
const (
	CelsiusGlyph    = "\u205F\u2103"
	FahrenheitGlyph = "\u205F\u2109"
)

// celsiusMarkers splits a Celsius string; only the text before the first marker is parsed.
const celsiusMarkers = " \u205F\u2103\u00B0C"

// String returns the lower-case unit name.
func (u Unit) String() string {
	if u == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

// Glyph returns the display suffix for the unit.
func (u Unit) Glyph() string {
	if u == Fahrenheit {
		return FahrenheitGlyph
	}
	return CelsiusGlyph
}

// Value is an immutable temperature reading.
type Value struct {
	magnitude float64
	unit      Unit
}

// C returns a Celsius value.
func C(v float64) Value {
	return Value{magnitude: v, unit: Celsius}
}

// F returns a Fahrenheit value.
func F(v float64) Value {
	return Value{magnitude: v, unit: Fahrenheit}
}

// FromInt returns a Celsius value from any integer type.
func FromInt[T constraints.Integer](v T) Value {
	return C(float64(v))
}

// NA returns the missing Celsius value.
func NA() Value {
	return C(math.NaN())
}

// Magnitude returns the number as written, in the value's own unit.
func (v Value) Magnitude() float64 {
	return v.magnitude
}

// Unit returns the unit tag.
func (v Value) Unit() Unit {
	return v.unit
}

// Celsius returns the Celsius-equivalent magnitude.
func (v Value) Celsius() float64 {
	if v.unit == Fahrenheit {
		return FahrenheitToCelsius(v.magnitude)
	}
	return v.magnitude
}

// Fahrenheit returns the Fahrenheit-equivalent magnitude.
func (v Value) Fahrenheit() float64 {
	if v.unit == Fahrenheit {
		return v.magnitude
	}
	return CelsiusToFahrenheit(v.magnitude)
}

// IsNA reports whether the value is missing.
func (v Value) IsNA() bool {
	return math.IsNaN(v.magnitude)
}

// Equal compares Celsius-equivalent magnitudes. Missing values are never equal.
func (v Value) Equal(other Value) bool {
	return v.Celsius() == other.Celsius()
}

// Less orders by Celsius-equivalent magnitude.
func (v Value) Less(other Value) bool {
	return v.Celsius() < other.Celsius()
}

// String renders the magnitude followed by the unit glyph, e.g. "24.0 ℃" for C(24).
func (v Value) String() string {
	return FormatFloat(v.magnitude) + v.unit.Glyph()
}

// FahrenheitToCelsius converts a Fahrenheit magnitude.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * (5.0 / 9.0)
}

// CelsiusToFahrenheit converts a Celsius magnitude.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9.0/5.0 + 32
}

// ParseCelsius parses strings such as "14.5", "14.5 ℃" or "14.5°C".
func ParseCelsius(s string) (Value, error) {
	text := strings.TrimSpace(s)
	if i := strings.IndexAny(text, celsiusMarkers); i >= 0 {
		text = text[:i]
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, errors.NewInvalidValueError("ParseCelsius", s, err)
	}
	return C(f), nil
}

// Parse accepts everything ParseCelsius does plus Fahrenheit strings ending in
// "℉", "°F" or "F", which yield Fahrenheit values. A suffix only counts when the
// text before it is a number, so "INF" stays an infinite Celsius reading.
func Parse(s string) (Value, error) {
	text := strings.TrimSpace(s)
	for _, suffix := range []string{"\u2109", "\u00B0F", "F"} {
		rest, ok := strings.CutSuffix(text, suffix)
		if !ok {
			continue
		}
		if f, err := strconv.ParseFloat(strings.TrimRight(rest, " \u205F"), 64); err == nil {
			return F(f), nil
		}
	}
	return ParseCelsius(text)
}
