package series

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/extarray"
	"github.com/paveg/siunit/internal/extension"
	"github.com/paveg/siunit/internal/temparray"
)

// Temperature is a named column over a temperature array. Its arrow type is the
// celsius extension type.
type Temperature struct {
	name   string
	values *temparray.Array
}

// NewTemperature wraps arr as a column. The column takes ownership of arr.
func NewTemperature(name string, arr *temparray.Array) *Temperature {
	return &Temperature{name: name, values: arr}
}

func (s *Temperature) Name() string { return s.name }

func (s *Temperature) Len() int { return s.values.Len() }

// Values returns the backing temperature array.
func (s *Temperature) Values() *temparray.Array {
	return s.values
}

func (s *Temperature) DataType() arrow.DataType {
	return extension.NewCelsiusType()
}

// IsNull reports whether the reading at index is missing.
func (s *Temperature) IsNull(index int) bool {
	v, err := s.values.Get(index)
	return err != nil || v.IsNA()
}

func (s *Temperature) IsNA() []bool {
	return s.values.IsNA()
}

func (s *Temperature) GetAsString(index int) string {
	v, err := s.values.Get(index)
	if err != nil {
		return ""
	}
	return v.String()
}

func (s *Temperature) String() string {
	return fmt.Sprintf("Series[%s]: %s (len=%d)", temparray.DtypeName, s.name, s.Len())
}

// Array exports the column as a celsius extension array. The caller releases it.
func (s *Temperature) Array() arrow.Array {
	return extension.NewCelsiusArray(s.values)
}

func (s *Temperature) Release() {
	s.values.Release()
}

// Take gathers readings by position; with allowFill, -1 yields NA.
func (s *Temperature) Take(indices []int, allowFill bool) (Column, error) {
	var opts *extarray.TakeOptions
	if allowFill {
		opts = extarray.WithNAFill()
	}
	taken, err := s.values.Take(indices, opts)
	if err != nil {
		return nil, err
	}
	return NewTemperature(s.name, taken), nil
}

// SliceRows returns readings [start, end) in a new array.
func (s *Temperature) SliceRows(start, end int) Column {
	return NewTemperature(s.name, s.values.Slice(start, end))
}

// ConcatRows joins temperature columns through the array's same-type concatenation.
func (s *Temperature) ConcatRows(others ...Column) (Column, error) {
	arrays := make([]*temparray.Array, 0, len(others)+1)
	arrays = append(arrays, s.values)
	for _, other := range others {
		typed, ok := other.(*Temperature)
		if !ok {
			return nil, errors.NewTypeMismatchError("ConcatRows", other)
		}
		arrays = append(arrays, typed.values)
	}
	joined, err := temparray.Concat(arrays...)
	if err != nil {
		return nil, err
	}
	return NewTemperature(s.name, joined), nil
}

var (
	_ Column       = (*Temperature)(nil)
	_ Concatenator = (*Temperature)(nil)
)
