package temperature

import (
	"math"
	"strconv"
	"strings"
)

// Decimal exponent range rendered in fixed notation.
const (
	minFixedExponent = -4
	maxFixedExponent = 16
)

// FormatFloat renders v with the shortest digits that round-trip. Values whose
// decimal exponent lies in [-4, 16) use fixed notation and always carry a
// fractional part ("24.0", "4294967296.0"); others use exponent notation
// ("1.8446744073709552e+19", "1e-05").
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return sci
	}
	if exp < minFixedExponent || exp >= maxFixedExponent {
		return sci
	}

	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(fixed, '.') {
		fixed += ".0"
	}
	return fixed
}
