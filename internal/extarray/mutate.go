package extarray

import (
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/parser"
	"github.com/paveg/siunit/internal/validation"
)

const (
	opSet    = "Set"
	opAppend = "Append"
	opDelete = "Delete"
)

// Set parses in and writes it at position i. The input must hold exactly one value.
func (a *Array[V]) Set(i int, in parser.Input) error {
	return a.SetMany([]int{i}, in)
}

// SetMany parses in and writes it at the given positions. A single value is
// broadcast, otherwise the value count must match the index count. Nothing is
// written unless every index is valid.
func (a *Array[V]) SetMany(indices []int, in parser.Input) error {
	values, err := a.kind.Parse(in)
	if err != nil {
		return err
	}
	if len(values) != 1 {
		if err := validation.ValidateLength(len(indices), len(values), opSet); err != nil {
			return err
		}
	}

	positions := make([]int, len(indices))
	for k, i := range indices {
		idx, err := validation.NormalizeIndex(i, a.Len(), opSet)
		if err != nil {
			return err
		}
		positions[k] = idx
	}

	for k, idx := range positions {
		if len(values) == 1 {
			a.data[idx] = values[0]
			continue
		}
		a.data[idx] = values[k]
	}
	return nil
}

// SetMask parses in and writes it wherever mask is true.
func (a *Array[V]) SetMask(mask []bool, in parser.Input) error {
	if err := validation.ValidateLength(a.Len(), len(mask), opSet); err != nil {
		return err
	}
	indices := make([]int, 0, len(mask))
	for i, hit := range mask {
		if hit {
			indices = append(indices, i)
		}
	}
	return a.SetMany(indices, in)
}

// Append parses in and grows the array by its values.
func (a *Array[V]) Append(in parser.Input) error {
	values, err := a.kind.Parse(in)
	if err != nil {
		return err
	}

	next := a.derive(a.Len() + len(values))
	n := copy(next.data, a.data)
	copy(next.data[n:], values)
	a.replace(next)
	return nil
}

// Delete exists for host compatibility and always fails: a one-dimensional
// array has no column labels to remove, and no other key shape is accepted.
func (a *Array[V]) Delete(where any) error {
	switch key := where.(type) {
	case string:
		return errors.NewUnsupportedKeyError(opDelete, key).WithHint(labelHint)
	case []string:
		if len(key) > 0 {
			return errors.NewUnsupportedKeyError(opDelete, key).WithHint(labelHint)
		}
	}
	return errors.NewUnsupportedKeyError(opDelete, where)
}

const labelHint = "column labels are not defined for a one-dimensional array"
