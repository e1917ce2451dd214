// Package temparray binds the generic array engine to Celsius temperatures.
package temparray

import (
	"math"

	"github.com/paveg/siunit/internal/extarray"
	"github.com/paveg/siunit/internal/parser"
	"github.com/paveg/siunit/internal/temperature"
)

const (
	// DtypeName is the registered name of the Celsius dtype.
	DtypeName = "celsius"
	// ArrayName prefixes the string form of an Array.
	ArrayName = "TemperatureArray"
)

// Array is a column of Celsius temperatures.
type Array = extarray.Array[temperature.Value]

type celsiusKind struct{}

func (celsiusKind) Name() string      { return DtypeName }
func (celsiusKind) ArrayName() string { return ArrayName }

func (celsiusKind) Parse(in parser.Input) ([]float64, error) {
	return parser.Coerce(in)
}

func (celsiusKind) Box(v float64) temperature.Value {
	return temperature.C(v)
}

func (celsiusKind) Format(v float64) string {
	return temperature.C(v).String()
}

func (celsiusKind) NA() float64 {
	return math.NaN()
}

func (celsiusKind) IsNA(v float64) bool {
	return math.IsNaN(v)
}

// Kind returns the Celsius capability shared by every temperature array.
func Kind() extarray.Kind[temperature.Value] {
	return celsiusKind{}
}

// New parses in into a temperature array. A parser.Buffer input is shared
// unless extarray.WithCopy(true) is given.
func New(in parser.Input, opts ...extarray.Option) (*Array, error) {
	return extarray.New(Kind(), in, opts...)
}

// ToTemperature converts any accepted input into a temperature array. Scalars
// become one-element arrays.
func ToTemperature(in parser.Input) (*Array, error) {
	return New(in)
}

// FromBuffer wraps a canonical Celsius buffer without parsing it.
func FromBuffer(values []float64, opts ...extarray.Option) *Array {
	return extarray.FromBuffer(Kind(), values, opts...)
}

// FromValues builds an array from scalar temperatures, converting Fahrenheit values.
func FromValues(values ...temperature.Value) (*Array, error) {
	return New(parser.Temperatures(values))
}

// FromFactorized rebuilds an array from the distinct values of a factorization.
func FromFactorized(values []float64, original *Array) (*Array, error) {
	return extarray.FromFactorized(Kind(), values, original)
}

// Concat joins temperature arrays in order.
func Concat(arrays ...*Array) (*Array, error) {
	return extarray.Concat(arrays...)
}
