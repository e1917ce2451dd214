package extarray

import (
	"cmp"
	"slices"

	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/parser"
)

// order compares stored values with missing values sorted last.
func (a *Array[V]) order(x, y float64) int {
	xNA, yNA := a.kind.IsNA(x), a.kind.IsNA(y)
	switch {
	case xNA && yNA:
		return 0
	case xNA:
		return 1
	case yNA:
		return -1
	}
	return cmp.Compare(x, y)
}

// Argsort returns the positions that sort the array. The sort is stable and
// missing values always come last.
func (a *Array[V]) Argsort(ascending bool) []int {
	idx := make([]int, len(a.data))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) int {
		x, y := a.data[i], a.data[j]
		if !ascending && !a.kind.IsNA(x) && !a.kind.IsNA(y) {
			return cmp.Compare(y, x)
		}
		return a.order(x, y)
	})
	return idx
}

// Unique returns the distinct values in order of first appearance. Values are
// grouped by a stable sort, the lowest position of each group is kept and the
// kept positions are restored to ascending order. All missing values collapse
// into one.
func (a *Array[V]) Unique() *Array[V] {
	sorted := a.Argsort(true)
	keep := make([]int, 0, len(sorted))
	for k, i := range sorted {
		if k > 0 && a.order(a.data[sorted[k-1]], a.data[i]) == 0 {
			continue
		}
		keep = append(keep, i)
	}
	slices.Sort(keep)

	out := a.derive(len(keep))
	for k, i := range keep {
		out.data[k] = a.data[i]
	}
	return out
}

// Factorize encodes the array as integer codes into an array of distinct
// values, both in order of first appearance. Missing values get code -1 and are
// left out of the distinct values.
func (a *Array[V]) Factorize() ([]int, *Array[V]) {
	table := newFloatTable(len(a.data))
	codes := make([]int, len(a.data))
	uniques := make([]float64, 0)
	for i, v := range a.data {
		if a.kind.IsNA(v) {
			codes[i] = -1
			continue
		}
		code, added := table.Insert(v)
		if added {
			uniques = append(uniques, v)
		}
		codes[i] = code
	}
	return codes, copyOf(a.kind, a.mem, uniques)
}

// ValuesForFactorize returns a copy of the values and the marker a generic
// factorizer should treat as missing.
func (a *Array[V]) ValuesForFactorize() ([]float64, float64) {
	return a.ToList(), a.kind.NA()
}

// FromFactorized rebuilds an array from factorized values. The values are
// already canonical and are wrapped without copying; original, when given,
// supplies the allocator.
func FromFactorized[V any](kind Kind[V], values []float64, original *Array[V]) (*Array[V], error) {
	if original == nil {
		return FromBuffer(kind, values), nil
	}
	if !sameKind(kind, original.kind) {
		return nil, errors.NewTypeMismatchError("FromFactorized", original.kind)
	}
	return FromBuffer(kind, values, WithAllocator(original.mem)), nil
}

// IsIn reports, per element, whether the value occurs in other. A scalar input
// is a one-element set. Missing values never match.
func (a *Array[V]) IsIn(other parser.Input) ([]bool, error) {
	values, err := a.kind.Parse(other)
	if err != nil {
		return nil, err
	}

	set := newFloatTable(len(values))
	for _, v := range values {
		if !a.kind.IsNA(v) {
			set.Insert(v)
		}
	}

	out := make([]bool, len(a.data))
	for i, v := range a.data {
		if a.kind.IsNA(v) {
			continue
		}
		_, out[i] = set.Lookup(v)
	}
	return out, nil
}
