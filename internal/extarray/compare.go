package extarray

import (
	"github.com/paveg/siunit/internal/validation"
)

// IsNA reports, per element, whether the value is the missing-value sentinel.
func (a *Array[V]) IsNA() []bool {
	out := make([]bool, len(a.data))
	for i, v := range a.data {
		out[i] = a.kind.IsNA(v)
	}
	return out
}

// HasNA reports whether any element is missing.
func (a *Array[V]) HasNA() bool {
	for _, v := range a.data {
		if a.kind.IsNA(v) {
			return true
		}
	}
	return false
}

// compare applies fn elementwise. A missing value on either side yields false.
func (a *Array[V]) compare(op string, other *Array[V], fn func(x, y float64) bool) ([]bool, error) {
	if err := a.checkOperand(op, other); err != nil {
		return nil, err
	}
	if err := validation.ValidateLength(a.Len(), other.Len(), op); err != nil {
		return nil, err
	}

	out := make([]bool, len(a.data))
	for i, x := range a.data {
		y := other.data[i]
		if a.kind.IsNA(x) || a.kind.IsNA(y) {
			continue
		}
		out[i] = fn(x, y)
	}
	return out, nil
}

// Eq compares elementwise for equality.
func (a *Array[V]) Eq(other *Array[V]) ([]bool, error) {
	return a.compare("Eq", other, func(x, y float64) bool { return x == y })
}

// Ne compares elementwise for inequality.
func (a *Array[V]) Ne(other *Array[V]) ([]bool, error) {
	return a.compare("Ne", other, func(x, y float64) bool { return x != y })
}

// Lt compares elementwise with <.
func (a *Array[V]) Lt(other *Array[V]) ([]bool, error) {
	return a.compare("Lt", other, func(x, y float64) bool { return x < y })
}

// Le compares elementwise with <=.
func (a *Array[V]) Le(other *Array[V]) ([]bool, error) {
	return a.compare("Le", other, func(x, y float64) bool { return x <= y })
}

// Gt is other.Lt(a).
func (a *Array[V]) Gt(other *Array[V]) ([]bool, error) {
	if err := a.checkOperand("Gt", other); err != nil {
		return nil, err
	}
	return other.Lt(a)
}

// Ge is other.Le(a).
func (a *Array[V]) Ge(other *Array[V]) ([]bool, error) {
	if err := a.checkOperand("Ge", other); err != nil {
		return nil, err
	}
	return other.Le(a)
}

// Equals reports whether both arrays hold the same values in the same order.
// Missing values compare equal to each other.
func (a *Array[V]) Equals(other *Array[V]) (bool, error) {
	if err := a.checkOperand("Equals", other); err != nil {
		return false, err
	}
	if a.Len() != other.Len() {
		return false, nil
	}
	for i, x := range a.data {
		y := other.data[i]
		if x == y || (a.kind.IsNA(x) && a.kind.IsNA(y)) {
			continue
		}
		return false, nil
	}
	return true, nil
}
