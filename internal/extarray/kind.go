// Package extarray implements a columnar array engine over a contiguous float64
// buffer. The engine is generic over the boxed scalar type V; everything that is
// specific to a unit (parsing, display, the missing-value sentinel) comes from a
// Kind implementation supplied once per unit.
//
// Arrays are not safe for concurrent mutation. Concurrent read-only access is fine.
package extarray

import (
	"github.com/paveg/siunit/internal/parser"
)

// Kind supplies the unit-specific behavior of an Array.
type Kind[V any] interface {
	// Name is the dtype name, e.g. "celsius".
	Name() string
	// ArrayName prefixes the String representation, e.g. "TemperatureArray".
	ArrayName() string
	// Parse normalizes input into a canonical buffer. A parser.Buffer input must be
	// returned without copying.
	Parse(in parser.Input) ([]float64, error)
	// Box converts one stored value into its scalar form.
	Box(v float64) V
	// Format renders one stored value for display.
	Format(v float64) string
	// NA returns the missing-value sentinel.
	NA() float64
	// IsNA reports whether a stored value is missing.
	IsNA(v float64) bool
}

func sameKind[V any](a, b Kind[V]) bool {
	return a.Name() == b.Name()
}
