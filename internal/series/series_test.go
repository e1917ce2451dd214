package series

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/siunit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeries(t *testing.T) {
	mem := memory.NewGoAllocator()

	tests := []struct {
		name         string
		series       Column
		expectedLen  int
		expectedType arrow.DataType
	}{
		{"string series", New("names", []string{"alice", "bob", "charlie"}, mem), 3, arrow.BinaryTypes.String},
		{"int64 series", New("ages", []int64{25, 30, 35}, mem), 3, arrow.PrimitiveTypes.Int64},
		{"int32 series", New("ids", []int32{1, 2}, mem), 2, arrow.PrimitiveTypes.Int32},
		{"float64 series", New("scores", []float64{85.5, 92.0, 78.3}, mem), 3, arrow.PrimitiveTypes.Float64},
		{"float32 series", New("ratios", []float32{0.5}, mem), 1, arrow.PrimitiveTypes.Float32},
		{"bool series", New("active", []bool{true, false, true}, mem), 3, arrow.FixedWidthTypes.Boolean},
		{"empty string series", New("empty", []string{}, mem), 0, arrow.BinaryTypes.String},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer tt.series.Release()
			assert.Equal(t, tt.expectedLen, tt.series.Len())
			assert.True(t, arrow.TypeEqual(tt.expectedType, tt.series.DataType()))
		})
	}
}

func TestSeriesValues(t *testing.T) {
	s := New("ages", []int64{25, 30, 35}, nil)
	defer s.Release()

	assert.Equal(t, "ages", s.Name())
	assert.Equal(t, []int64{25, 30, 35}, s.Values())
	assert.Equal(t, int64(30), s.Value(1))
	assert.Equal(t, int64(0), s.Value(10))
	assert.Equal(t, "30", s.GetAsString(1))
	assert.Equal(t, "Series[int64]: ages (len=3)", s.String())
}

func TestSeriesValidity(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	s := NewWithValidity("v", []float64{1, 2, 3}, []bool{true, false, true}, mem)
	defer s.Release()

	assert.True(t, s.IsNull(1))
	assert.Equal(t, 0.0, s.Value(1))
	assert.Equal(t, array.NullValueStr, s.GetAsString(1))
	assert.Equal(t, []bool{false, true, false}, s.IsNA())
}

func checkNullRoundTrip[T Element](t *testing.T, values []T) {
	t.Helper()
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	valid := make([]bool, len(values))
	for i := range valid {
		valid[i] = i%2 == 0
	}
	s := NewWithValidity("v", values, valid, mem)
	defer s.Release()

	var zero T
	for i, v := range values {
		if valid[i] {
			assert.Equal(t, v, s.Value(i))
			continue
		}
		assert.True(t, s.IsNull(i))
		assert.Equal(t, zero, s.Value(i))
	}
}

func TestSeriesElementTypes(t *testing.T) {
	t.Run("string", func(t *testing.T) { checkNullRoundTrip(t, []string{"a", "b", "c"}) })
	t.Run("int64", func(t *testing.T) { checkNullRoundTrip(t, []int64{1, 2, 3}) })
	t.Run("int32", func(t *testing.T) { checkNullRoundTrip(t, []int32{4, 5}) })
	t.Run("float64", func(t *testing.T) { checkNullRoundTrip(t, []float64{1.5, 2.5, 3.5}) })
	t.Run("float32", func(t *testing.T) { checkNullRoundTrip(t, []float32{0.25, 0.5}) })
	t.Run("bool", func(t *testing.T) { checkNullRoundTrip(t, []bool{true, true, false}) })
}

func TestSeriesIsNANaN(t *testing.T) {
	s := New("v", []float64{1, nan(), 3}, nil)
	defer s.Release()
	assert.Equal(t, []bool{false, true, false}, s.IsNA())

	strs := New("s", []string{"a", ""}, nil)
	defer strs.Release()
	assert.Equal(t, []bool{false, false}, strs.IsNA())
}

func TestSeriesTake(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	s := New("names", []string{"a", "b", "c"}, mem)
	defer s.Release()

	tests := []struct {
		name      string
		indices   []int
		allowFill bool
		values    []string
		nulls     []bool
	}{
		{"forward", []int{2, 0}, false, []string{"c", "a"}, []bool{false, false}},
		{"negative wraps", []int{-1}, false, []string{"c"}, []bool{false}},
		{"fill", []int{1, -1}, true, []string{"b", ""}, []bool{false, true}},
		{"empty", []int{}, true, []string{}, []bool{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, err := s.Take(tt.indices, tt.allowFill)
			require.NoError(t, err)
			defer col.Release()

			taken := col.(*Series[string])
			assert.Equal(t, tt.values, taken.Values())
			assert.Equal(t, tt.nulls, taken.IsNA())
		})
	}
}

func TestSeriesTakeErrors(t *testing.T) {
	s := New("v", []int64{1, 2, 3}, nil)
	defer s.Release()

	_, err := s.Take([]int{3}, false)
	assert.ErrorIs(t, err, errors.ErrIndexOutOfBounds)

	_, err = s.Take([]int{-2}, true)
	assert.ErrorIs(t, err, errors.ErrInvalidTake)
}

func TestSeriesSliceRows(t *testing.T) {
	s := New("v", []int64{1, 2, 3, 4}, nil)
	defer s.Release()

	tests := []struct {
		name       string
		start, end int
		expected   []int64
	}{
		{"middle", 1, 3, []int64{2, 3}},
		{"clamped", 2, 10, []int64{3, 4}},
		{"inverted", 3, 1, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := s.SliceRows(tt.start, tt.end)
			defer col.Release()
			assert.Equal(t, tt.expected, col.(*Series[int64]).Values())
		})
	}
}

func TestSeriesConcatRows(t *testing.T) {
	a := NewWithValidity("v", []bool{true, false}, []bool{true, false}, nil)
	b := New("v", []bool{true}, nil)
	defer a.Release()
	defer b.Release()

	col, err := a.ConcatRows(b)
	require.NoError(t, err)
	defer col.Release()
	assert.Equal(t, 3, col.Len())
	assert.Equal(t, []bool{false, true, false}, col.IsNA())

	other := New("v", []int64{1}, nil)
	defer other.Release()
	_, err = a.ConcatRows(other)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
}

func TestSeriesArray(t *testing.T) {
	s := New("v", []int64{1}, nil)
	arr := s.Array()
	s.Release()

	// The retained reference outlives the series.
	assert.Equal(t, 1, arr.Len())
	arr.Release()
}
