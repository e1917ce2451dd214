package extarray

import (
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/validation"
)

const (
	opGet   = "Get"
	opSlice = "Slice"
	opMask  = "Mask"
	opTake  = "Take"
)

// Get returns the boxed value at position i. Negative positions count from the end.
func (a *Array[V]) Get(i int) (V, error) {
	idx, err := validation.NormalizeIndex(i, a.Len(), opGet)
	if err != nil {
		var zero V
		return zero, err
	}
	return a.kind.Box(a.data[idx]), nil
}

// Slice returns the elements in [start, stop) as a new array. Bounds follow
// Python slicing: negative values count from the end and out of range values
// are clamped.
func (a *Array[V]) Slice(start, stop int) *Array[V] {
	out, _ := a.SliceStep(start, stop, 1)
	return out
}

// SliceStep is Slice with a stride. A negative step walks backwards, so
// SliceStep(-1, math.MinInt, -1) reverses the array. A zero step is an error.
func (a *Array[V]) SliceStep(start, stop, step int) (*Array[V], error) {
	if step == 0 {
		return nil, errors.NewInvalidArgumentError(opSlice, "slice step cannot be zero")
	}
	from, count := sliceBounds(a.Len(), start, stop, step)
	out := a.derive(count)
	for i := range count {
		out.data[i] = a.data[from+i*step]
	}
	return out, nil
}

// sliceBounds resolves a slice against length n, returning the first position
// and the number of selected elements.
func sliceBounds(n, start, stop, step int) (int, int) {
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	clamp := func(v int) int {
		if v < 0 {
			v += n
			if v < lower {
				return lower
			}
			return v
		}
		if v > upper {
			return upper
		}
		return v
	}
	start, stop = clamp(start), clamp(stop)

	switch {
	case step > 0 && start < stop:
		return start, (stop-start-1)/step + 1
	case step < 0 && stop < start:
		return start, (start-stop-1)/(-step) + 1
	default:
		return start, 0
	}
}

// Mask returns the elements whose mask entry is true.
func (a *Array[V]) Mask(mask []bool) (*Array[V], error) {
	if err := validation.ValidateLength(a.Len(), len(mask), opMask); err != nil {
		return nil, err
	}
	count := 0
	for _, keep := range mask {
		if keep {
			count++
		}
	}
	out := a.derive(count)
	j := 0
	for i, keep := range mask {
		if keep {
			out.data[j] = a.data[i]
			j++
		}
	}
	return out, nil
}

// Take gathers the elements at indices into a new array.
//
// Without AllowFill, negative indices count from the end. With AllowFill, -1
// selects the fill value, any other negative index is rejected, and an empty
// array only accepts -1.
func (a *Array[V]) Take(indices []int, opts *TakeOptions) (*Array[V], error) {
	allowFill := opts != nil && opts.AllowFill
	if err := validation.ValidateTakeIndices(indices, a.Len(), allowFill, opTake); err != nil {
		return nil, err
	}

	fill := a.kind.NA()
	if opts != nil && opts.FillValue != nil {
		fill = *opts.FillValue
	}

	n := a.Len()
	out := a.derive(len(indices))
	for i, idx := range indices {
		switch {
		case allowFill && idx == validation.FillIndex:
			out.data[i] = fill
		case idx < 0:
			out.data[i] = a.data[idx+n]
		default:
			out.data[i] = a.data[idx]
		}
	}
	return out, nil
}
