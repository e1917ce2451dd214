// Package parser normalizes heterogeneous temperature input into the canonical
// buffer: a one-dimensional []float64 of Celsius magnitudes.
//
// Input is a closed tagged variant. Callers build it with the constructors below
// (or FromAny for dynamically typed host values) and Coerce resolves every
// variant in a single switch.
package parser

import (
	"maps"
	"slices"

	"github.com/paveg/siunit/internal/common"
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/temperature"
	"golang.org/x/exp/constraints"
)

// Kind identifies the variant held by an Input.
type Kind uint8

const (
	KindNumber Kind = iota
	KindString
	KindTemperature
	KindSequence
	KindBuffer
	KindMatrix
)

var kindNames = [...]string{
	KindNumber:      "number",
	KindString:      "string",
	KindTemperature: "temperature",
	KindSequence:    "sequence",
	KindBuffer:      "buffer",
	KindMatrix:      "matrix",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Input is one value accepted by the temperature constructors.
type Input struct {
	kind   Kind
	number float64
	text   string
	temp   temperature.Value
	items  []Input
	buffer []float64
	matrix [][]float64
}

// Number is a bare float reading in Celsius.
func Number(v float64) Input {
	return Input{kind: KindNumber, number: v}
}

// Integer promotes any integer type to a Number without truncation.
func Integer[T constraints.Integer](v T) Input {
	return Number(float64(v))
}

// String is a numeric string, optionally suffixed with a unit marker.
func String(s string) Input {
	return Input{kind: KindString, text: s}
}

// Temperature is a unit-tagged scalar. Fahrenheit values are converted by Coerce.
func Temperature(v temperature.Value) Input {
	return Input{kind: KindTemperature, temp: v}
}

// Sequence is an ordered list of scalar inputs.
func Sequence(items ...Input) Input {
	return Input{kind: KindSequence, items: items}
}

// Numbers copies a numeric slice into a fresh float64 buffer.
func Numbers[T constraints.Integer | constraints.Float](values []T) Input {
	buf := make([]float64, len(values))
	for i, v := range values {
		buf[i] = float64(v)
	}
	return Buffer(buf)
}

// Strings is a sequence of string scalars.
func Strings(values []string) Input {
	items := make([]Input, len(values))
	for i, s := range values {
		items[i] = String(s)
	}
	return Sequence(items...)
}

// Temperatures is a sequence of unit-tagged scalars.
func Temperatures(values []temperature.Value) Input {
	items := make([]Input, len(values))
	for i, v := range values {
		items[i] = Temperature(v)
	}
	return Sequence(items...)
}

// Buffer wraps an already canonical buffer. Coerce returns the same slice.
func Buffer(values []float64) Input {
	return Input{kind: KindBuffer, buffer: values}
}

// Set is an unordered collection of numbers; elements are taken in ascending order.
func Set[T constraints.Integer | constraints.Float](values map[T]struct{}) Input {
	return Numbers(slices.Sorted(maps.Keys(values)))
}

// StringSet is an unordered collection of strings, taken in lexical order.
func StringSet(values map[string]struct{}) Input {
	return Strings(slices.Sorted(maps.Keys(values)))
}

// Matrix is a two-dimensional buffer. Coerce always rejects it.
func Matrix(rows [][]float64) Input {
	return Input{kind: KindMatrix, matrix: rows}
}

// Kind returns the variant tag.
func (in Input) Kind() Kind {
	return in.kind
}

// IsScalar reports whether the input is a single value.
func (in Input) IsScalar() bool {
	switch in.kind {
	case KindNumber, KindString, KindTemperature:
		return true
	default:
		return false
	}
}

// Len returns the number of logical elements. Scalars count as one.
func (in Input) Len() int {
	switch in.kind {
	case KindSequence:
		return len(in.items)
	case KindBuffer:
		return len(in.buffer)
	case KindMatrix:
		return len(in.matrix)
	default:
		return 1
	}
}

// FromAny converts a dynamically typed host value into an Input.
func FromAny(value any) (Input, error) {
	switch v := value.(type) {
	case Input:
		return v, nil
	case string:
		return String(v), nil
	case temperature.Value:
		return Temperature(v), nil
	case []float64:
		return Buffer(v), nil
	case []float32:
		return Numbers(v), nil
	case []int:
		return Numbers(v), nil
	case []int32:
		return Numbers(v), nil
	case []int64:
		return Numbers(v), nil
	case []uint64:
		return Numbers(v), nil
	case []string:
		return Strings(v), nil
	case []temperature.Value:
		return Temperatures(v), nil
	case [][]float64:
		return Matrix(v), nil
	case map[float64]struct{}:
		return Set(v), nil
	case map[int]struct{}:
		return Set(v), nil
	case map[string]struct{}:
		return StringSet(v), nil
	case []Input:
		return Sequence(v...), nil
	case []any:
		items := make([]Input, len(v))
		for i, elem := range v {
			item, err := FromAny(elem)
			if err != nil {
				return Input{}, err
			}
			items[i] = item
		}
		return Sequence(items...), nil
	}

	if common.IsNumericType(value) {
		f, err := common.ToFloat64(value)
		if err != nil {
			return Input{}, errors.NewInternalError("FromAny", err)
		}
		return Number(f), nil
	}
	return Input{}, errors.NewTypeMismatchError("FromAny", value)
}
