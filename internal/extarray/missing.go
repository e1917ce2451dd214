package extarray

import (
	"iter"
)

// All iterates positions and boxed values.
func (a *Array[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range a.data {
			if !yield(i, a.kind.Box(v)) {
				return
			}
		}
	}
}

// FillNA returns a copy with missing values replaced by v.
func (a *Array[V]) FillNA(v float64) *Array[V] {
	out := a.Copy()
	for i, x := range out.data {
		if a.kind.IsNA(x) {
			out.data[i] = v
		}
	}
	return out
}

// FFill returns a copy with each missing value replaced by the last valid value
// before it. Leading missing values stay missing.
func (a *Array[V]) FFill() *Array[V] {
	out := a.Copy()
	last, seen := 0.0, false
	for i, x := range out.data {
		if !a.kind.IsNA(x) {
			last, seen = x, true
			continue
		}
		if seen {
			out.data[i] = last
		}
	}
	return out
}

// DropNA returns the non-missing values.
func (a *Array[V]) DropNA() *Array[V] {
	mask := a.IsNA()
	for i := range mask {
		mask[i] = !mask[i]
	}
	out, _ := a.Mask(mask)
	return out
}

// Min returns the smallest non-missing value, or the missing value when there is none.
func (a *Array[V]) Min() V {
	return a.reduce(func(best, v float64) bool { return v < best })
}

// Max returns the largest non-missing value, or the missing value when there is none.
func (a *Array[V]) Max() V {
	return a.reduce(func(best, v float64) bool { return v > best })
}

func (a *Array[V]) reduce(better func(best, v float64) bool) V {
	best, found := a.kind.NA(), false
	for _, v := range a.data {
		if a.kind.IsNA(v) {
			continue
		}
		if !found || better(best, v) {
			best, found = v, true
		}
	}
	return a.kind.Box(best)
}

// Mean returns the average of the non-missing values, or the missing value when
// there is none.
func (a *Array[V]) Mean() V {
	sum, count := 0.0, 0
	for _, v := range a.data {
		if a.kind.IsNA(v) {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return a.kind.Box(a.kind.NA())
	}
	return a.kind.Box(sum / float64(count))
}
