// Package series provides named columns for frame operations: generic
// arrow-backed series and the temperature column.
package series

import (
	"fmt"
	"math"
	"reflect"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/validation"
)

// Element is the set of Go types a Series can hold.
type Element interface {
	string | int64 | int32 | float64 | float32 | bool
}

// Series represents a typed data column with Apache Arrow backend
type Series[T Element] struct {
	name  string
	mem   memory.Allocator
	array arrow.Array
}

// New creates a new Series from a slice of values
func New[T Element](name string, values []T, mem memory.Allocator) *Series[T] {
	return newSeries(name, values, nil, mem)
}

// NewWithValidity creates a Series whose rows are null where valid is false.
// A nil valid slice marks every row valid.
func NewWithValidity[T Element](name string, values []T, valid []bool, mem memory.Allocator) *Series[T] {
	return newSeries(name, values, valid, mem)
}

func newSeries[T Element](name string, values []T, valid []bool, mem memory.Allocator) *Series[T] {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &Series[T]{
		name:  name,
		mem:   mem,
		array: buildArray(values, valid, mem),
	}
}

func buildArray[T Element](values []T, valid []bool, mem memory.Allocator) arrow.Array {
	switch v := any(values).(type) {
	case []string:
		builder := array.NewStringBuilder(mem)
		defer builder.Release()
		builder.AppendValues(v, valid)
		return builder.NewArray()
	case []int64:
		builder := array.NewInt64Builder(mem)
		defer builder.Release()
		builder.AppendValues(v, valid)
		return builder.NewArray()
	case []int32:
		builder := array.NewInt32Builder(mem)
		defer builder.Release()
		builder.AppendValues(v, valid)
		return builder.NewArray()
	case []float64:
		builder := array.NewFloat64Builder(mem)
		defer builder.Release()
		builder.AppendValues(v, valid)
		return builder.NewArray()
	case []float32:
		builder := array.NewFloat32Builder(mem)
		defer builder.Release()
		builder.AppendValues(v, valid)
		return builder.NewArray()
	case []bool:
		builder := array.NewBooleanBuilder(mem)
		defer builder.Release()
		builder.AppendValues(v, valid)
		return builder.NewArray()
	default:
		// unreachable: Element lists exactly the cases above
		panic(fmt.Sprintf("unsupported type: %T", values))
	}
}

// Name returns the column name
func (s *Series[T]) Name() string {
	return s.name
}

// Len returns the length of the series
func (s *Series[T]) Len() int {
	return s.array.Len()
}

// Values returns the data as a Go slice. Null rows hold the zero value.
func (s *Series[T]) Values() []T {
	result := make([]T, s.array.Len())
	for i := range result {
		result[i] = s.Value(i)
	}
	return result
}

// Value returns the value at the given index
func (s *Series[T]) Value(index int) T {
	var result T
	if index < 0 || index >= s.array.Len() || s.array.IsNull(index) {
		return result
	}

	switch arr := s.array.(type) {
	case *array.String:
		if v, ok := any(&result).(*string); ok {
			*v = arr.Value(index)
		}
	case *array.Int64:
		if v, ok := any(&result).(*int64); ok {
			*v = arr.Value(index)
		}
	case *array.Int32:
		if v, ok := any(&result).(*int32); ok {
			*v = arr.Value(index)
		}
	case *array.Float64:
		if v, ok := any(&result).(*float64); ok {
			*v = arr.Value(index)
		}
	case *array.Float32:
		if v, ok := any(&result).(*float32); ok {
			*v = arr.Value(index)
		}
	case *array.Boolean:
		if v, ok := any(&result).(*bool); ok {
			*v = arr.Value(index)
		}
	}

	return result
}

// DataType returns the Arrow data type
func (s *Series[T]) DataType() arrow.DataType {
	return s.array.DataType()
}

// IsNull checks if the value at index is null
func (s *Series[T]) IsNull(index int) bool {
	return s.array.IsNull(index)
}

// IsNA reports null rows, and NaN rows for floating point series.
func (s *Series[T]) IsNA() []bool {
	out := make([]bool, s.Len())
	for i := range out {
		if s.array.IsNull(i) {
			out[i] = true
			continue
		}
		switch arr := s.array.(type) {
		case *array.Float64:
			out[i] = math.IsNaN(arr.Value(i))
		case *array.Float32:
			out[i] = math.IsNaN(float64(arr.Value(i)))
		}
	}
	return out
}

// GetAsString returns the value at index as a string, "(null)" for null rows.
func (s *Series[T]) GetAsString(index int) string {
	return s.array.ValueStr(index)
}

// Take gathers rows by position. Without allowFill negative indices count
// from the end; with it, -1 produces a null row.
func (s *Series[T]) Take(indices []int, allowFill bool) (Column, error) {
	n := s.Len()
	if err := validation.ValidateTakeIndices(indices, n, allowFill, "Take"); err != nil {
		return nil, err
	}

	values := make([]T, len(indices))
	valid := make([]bool, len(indices))
	for i, idx := range indices {
		if allowFill && idx == validation.FillIndex {
			continue
		}
		if idx < 0 {
			idx += n
		}
		values[i] = s.Value(idx)
		valid[i] = !s.array.IsNull(idx)
	}
	return newSeries(s.name, values, valid, s.mem), nil
}

// SliceRows returns rows [start, end), clamped to the series bounds.
func (s *Series[T]) SliceRows(start, end int) Column {
	start = max(0, min(start, s.Len()))
	end = max(start, min(end, s.Len()))
	indices := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		indices = append(indices, i)
	}
	// Every index is in range, so Take cannot fail.
	col, _ := s.Take(indices, false)
	return col
}

// ConcatRows appends the rows of series of the same element type.
func (s *Series[T]) ConcatRows(others ...Column) (Column, error) {
	values := s.Values()
	valid := s.validity()
	for _, other := range others {
		typed, ok := other.(*Series[T])
		if !ok {
			return nil, errors.NewTypeMismatchError("ConcatRows", other)
		}
		values = append(values, typed.Values()...)
		valid = append(valid, typed.validity()...)
	}
	return newSeries(s.name, values, valid, s.mem), nil
}

func (s *Series[T]) validity() []bool {
	valid := make([]bool, s.Len())
	for i := range valid {
		valid[i] = !s.array.IsNull(i)
	}
	return valid
}

// String returns a string representation of the series
func (s *Series[T]) String() string {
	return fmt.Sprintf("Series[%s]: %s (len=%d)",
		reflect.TypeOf(new(T)).Elem().Name(),
		s.name,
		s.Len())
}

// Array returns the underlying Arrow array (retains a reference)
func (s *Series[T]) Array() arrow.Array {
	if s.array != nil {
		s.array.Retain()
		return s.array
	}
	return nil
}

// Release releases the underlying Arrow memory
func (s *Series[T]) Release() {
	if s.array != nil {
		s.array.Release()
	}
}

var (
	_ Column       = (*Series[float64])(nil)
	_ Concatenator = (*Series[float64])(nil)
)
