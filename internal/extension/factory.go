package extension

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/extarray"
	"github.com/paveg/siunit/internal/parser"
	"github.com/paveg/siunit/internal/temparray"
)

// FromSequence builds a temperature array from dynamically typed scalars.
func FromSequence(scalars []any, copyData bool) (*temparray.Array, error) {
	in, err := parser.FromAny(scalars)
	if err != nil {
		return nil, err
	}
	return temparray.New(in, extarray.WithCopy(copyData))
}

// FromSequenceOfStrings builds a temperature array from strings.
func FromSequenceOfStrings(values []string) (*temparray.Array, error) {
	return temparray.New(parser.Strings(values))
}

// FromFactorized rebuilds an array from the distinct values of a factorization.
func FromFactorized(values []float64, original *temparray.Array) (*temparray.Array, error) {
	return temparray.FromFactorized(values, original)
}

// ConcatSameType joins temperature arrays in order.
func ConcatSameType(arrays ...*temparray.Array) (*temparray.Array, error) {
	return temparray.Concat(arrays...)
}

// IsTemperatureType reports whether v is the Celsius dtype, its name, or an
// array of it.
func IsTemperatureType(v any) bool {
	switch t := v.(type) {
	case string:
		return t == ExtensionName
	case *CelsiusType, *CelsiusArray, *temparray.Array:
		return true
	case arrow.ExtensionType:
		return t.ExtensionName() == ExtensionName
	case Dtype:
		return t.DtypeName() == ExtensionName
	default:
		return false
	}
}

// Comparison operators accepted by Compare.
const (
	OpEq = "=="
	OpNe = "!="
	OpLt = "<"
	OpLe = "<="
	OpGt = ">"
	OpGe = ">="
)

// Compare applies a comparison operator to two temperature arrays. Either side
// may be a *temparray.Array or a *CelsiusArray; scalars are rejected.
func Compare(op string, left, right any) ([]bool, error) {
	l, release, err := asTemperatures(op, left)
	if err != nil {
		return nil, err
	}
	defer release()
	r, releaseRight, err := asTemperatures(op, right)
	if err != nil {
		return nil, err
	}
	defer releaseRight()

	switch op {
	case OpEq:
		return l.Eq(r)
	case OpNe:
		return l.Ne(r)
	case OpLt:
		return l.Lt(r)
	case OpLe:
		return l.Le(r)
	case OpGt:
		return l.Gt(r)
	case OpGe:
		return l.Ge(r)
	default:
		return nil, errors.NewInvalidArgumentError("Compare", "unknown comparison operator "+op)
	}
}

func asTemperatures(op string, v any) (*temparray.Array, func(), error) {
	switch arr := v.(type) {
	case *temparray.Array:
		if arr != nil {
			return arr, func() {}, nil
		}
	case *CelsiusArray:
		if arr != nil {
			t := arr.Temperatures(false)
			return t, t.Release, nil
		}
	}
	return nil, nil, errors.NewTypeMismatchError(op, v)
}
