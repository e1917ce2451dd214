package extarray

import (
	"math"

	"github.com/goccy/go-json"
	"github.com/paveg/siunit/internal/common"
	"github.com/paveg/siunit/internal/errors"
)

// Dtype names accepted by AsType besides the kind's own name.
const (
	DtypeFloat64 = "float64"
	DtypeObject  = "object"
	DtypeString  = "string"
)

// FormatValues renders every element with the kind's display rule.
func (a *Array[V]) FormatValues() []string {
	out := make([]string, len(a.data))
	for i, v := range a.data {
		out[i] = a.kind.Format(v)
	}
	return out
}

// String renders the array as ArrayName([v0, v1, ...]).
func (a *Array[V]) String() string {
	return common.FormatFunction(a.kind.ArrayName(), common.FormatList(a.FormatValues()))
}

// FormatTruncated is String with at most limit elements shown.
func (a *Array[V]) FormatTruncated(limit int) string {
	return common.FormatFunction(a.kind.ArrayName(), common.FormatTruncatedList(a.FormatValues(), limit))
}

// AsType converts the array. The kind's own name yields *Array[V] (the receiver
// unless copy is set), "float64" yields []float64, "object" yields []V and
// "string" yields []string.
func (a *Array[V]) AsType(dtype string, copy bool) (any, error) {
	switch dtype {
	case a.kind.Name():
		if copy {
			return a.Copy(), nil
		}
		return a, nil
	case DtypeFloat64:
		if copy {
			return a.ToList(), nil
		}
		return a.data, nil
	case DtypeObject:
		return a.Boxed(), nil
	case DtypeString:
		return a.FormatValues(), nil
	default:
		return nil, errors.NewCastError("AsType", a.kind.Name(), dtype)
	}
}

// Boxed returns every element in scalar form.
func (a *Array[V]) Boxed() []V {
	out := make([]V, len(a.data))
	for i, v := range a.data {
		out[i] = a.kind.Box(v)
	}
	return out
}

// MarshalJSON encodes the values as a JSON array with missing values as null.
// Infinite values have no JSON number form and are written as display strings.
func (a *Array[V]) MarshalJSON() ([]byte, error) {
	out := make([]any, len(a.data))
	for i, v := range a.data {
		switch {
		case a.kind.IsNA(v):
		case math.IsInf(v, 0):
			out[i] = a.kind.Format(v)
		default:
			out[i] = v
		}
	}
	return json.Marshal(out)
}

// Concat joins arrays of the same kind in argument order into a fresh buffer.
func Concat[V any](arrays ...*Array[V]) (*Array[V], error) {
	if len(arrays) == 0 {
		return nil, errors.NewInvalidArgumentError("ConcatSameType", "need at least one array to concatenate")
	}
	first := arrays[0]
	if first == nil {
		return nil, errors.NewTypeMismatchError("ConcatSameType", first)
	}

	total := 0
	for _, arr := range arrays {
		if err := first.checkOperand("ConcatSameType", arr); err != nil {
			return nil, err
		}
		total += arr.Len()
	}

	out := first.derive(total)
	offset := 0
	for _, arr := range arrays {
		offset += copy(out.data[offset:], arr.data)
	}
	return out, nil
}
