package extarray

import (
	"math"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/siunit/internal/parser"
	"github.com/paveg/siunit/internal/temperature"
	"github.com/stretchr/testify/require"
)

// testKind stores Celsius readings and boxes them as plain floats.
type testKind struct{}

func (testKind) Name() string { return "celsius" }
func (testKind) ArrayName() string { return "TemperatureArray" }
func (testKind) Parse(in parser.Input) ([]float64, error) { return parser.Coerce(in) }
func (testKind) Box(v float64) float64 { return v }
func (testKind) Format(v float64) string { return temperature.C(v).String() }
func (testKind) NA() float64 { return math.NaN() }
func (testKind) IsNA(v float64) bool { return math.IsNaN(v) }

// otherKind has a different name, so arrays of it never mix with testKind arrays.
type otherKind struct{ testKind }

func (otherKind) Name() string { return "kelvin" }

func newChecked(t *testing.T) *memory.CheckedAllocator {
	t.Helper()
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	t.Cleanup(func() { mem.AssertSize(t, 0) })
	return mem
}

func mustNew(t *testing.T, mem memory.Allocator, values ...float64) *Array[float64] {
	t.Helper()
	arr, err := New[float64](testKind{}, parser.Buffer(values), WithCopy(true), WithAllocator(mem))
	require.NoError(t, err)
	t.Cleanup(arr.Release)
	return arr
}

func release(t *testing.T, arr *Array[float64]) *Array[float64] {
	t.Helper()
	t.Cleanup(arr.Release)
	return arr
}
