package siunit

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArray(t *testing.T) {
	tests := []struct {
		name     string
		values   any
		expected []float64
	}{
		{"buffer", []float64{24, 25}, []float64{24, 25}},
		{"strings", []string{"24.0 ℃", "25"}, []float64{24, 25}},
		{"integers", []int{1, 2}, []float64{1, 2}},
		{"scalar", "14.5", []float64{14.5}},
		{"fahrenheit", []Value{F(212)}, []float64{100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, err := NewArray(tt.values)
			require.NoError(t, err)
			defer arr.Release()
			assert.Equal(t, tt.expected, arr.ToList())
		})
	}
}

func TestNewArrayErrors(t *testing.T) {
	_, err := NewArray([][]float64{{1}, {2}})
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewArray([]string{"warm"})
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewArray(struct{}{})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestNewArrayCopyDefault(t *testing.T) {
	buf := []float64{1, 2, 3}

	shared, err := NewArray(buf)
	require.NoError(t, err)
	defer shared.Release()
	assert.Same(t, &buf[0], &shared.Values()[0])

	original := GetConfig()
	defer func() { require.NoError(t, SetConfig(original)) }()

	cfg := original
	cfg.CopyOnConstruct = true
	require.NoError(t, SetConfig(cfg))

	copied, err := NewArray(buf)
	require.NoError(t, err)
	defer copied.Release()
	assert.NotSame(t, &buf[0], &copied.Values()[0])

	// An explicit option wins over the configured default.
	overridden, err := NewArray(buf, WithCopy(false))
	require.NoError(t, err)
	defer overridden.Release()
	assert.Same(t, &buf[0], &overridden.Values()[0])
}

func TestSetConfigRejectsInvalid(t *testing.T) {
	cfg := GetConfig()
	cfg.MaxDisplayItems = 0
	assert.Error(t, SetConfig(cfg))
}

func TestArrayRepr(t *testing.T) {
	arr, err := FromValues(C(24), C(25), NA())
	require.NoError(t, err)
	defer arr.Release()
	assert.Equal(t, "TemperatureArray([24.0\u205F\u2103, 25.0\u205F\u2103, nan\u205F\u2103])", arr.String())
}

func TestToTemperature(t *testing.T) {
	arr, err := ToTemperature("14.5")
	require.NoError(t, err)
	defer arr.Release()
	assert.Equal(t, []float64{14.5}, arr.ToList())
}

func TestCompareAndDtype(t *testing.T) {
	a, err := NewArray([]float64{1, 2, math.NaN()})
	require.NoError(t, err)
	defer a.Release()
	b, err := NewArray([]float64{2, 2, 2})
	require.NoError(t, err)
	defer b.Release()

	lt, err := Compare("<", a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, lt)

	exported := NewCelsiusArray(a)
	defer exported.Release()
	ge, err := Compare(">=", exported, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, ge)

	assert.True(t, IsTemperatureType(a))
	assert.False(t, IsTemperatureType(1.5))

	dtype, err := ConstructDtype("celsius")
	require.NoError(t, err)
	assert.Equal(t, "celsius", dtype.DtypeName())

	_, err = ConstructDtype("kelvin")
	assert.ErrorIs(t, err, ErrDtypeConstruction)
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("70°F")
	require.NoError(t, err)
	assert.Equal(t, Fahrenheit, v.Unit())

	_, err = ParseValue("")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestDataFrame(t *testing.T) {
	readings, err := FromSequenceOfStrings([]string{"21.5", "nan", "19.0"})
	require.NoError(t, err)

	df := NewDataFrame(
		NewSeries("city", []string{"Oslo", "Rome", "Lima"}, nil),
		NewTemperatureSeries("temp", readings),
	)
	defer df.Release()

	assert.Equal(t, []string{"city", "temp"}, df.Columns())
	assert.Equal(t, 3, df.Len())
	assert.Equal(t, 2, df.Width())
	assert.True(t, df.HasColumn("temp"))

	taken, err := df.Take([]int{0, -1}, true)
	require.NoError(t, err)
	defer taken.Release()
	na := taken.IsNA()
	defer na.Release()
	col, ok := na.Column("temp")
	require.True(t, ok)
	assert.Equal(t, []bool{false, true}, col.IsNA())

	head := df.Slice(0, 1)
	defer head.Release()
	joined, err := df.Concat(head)
	require.NoError(t, err)
	defer joined.Release()
	assert.Equal(t, 4, joined.Len())
	assert.Equal(t, []string{"Oslo", "21.5\u205F\u2103"}, joined.Rows(-1)[3])

	_, err = df.Take([]int{7}, false)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	assert.Equal(t, []string{"temp"}, df.Drop("city").Columns())
	assert.Equal(t, 1, df.Select("city").Width())
}

func TestCSVRoundTripThroughFacade(t *testing.T) {
	readings, err := NewArray([]float64{21.5, math.NaN()}, WithCopy(true))
	require.NoError(t, err)

	df := NewDataFrame(
		NewSeries("city", []string{"Oslo", "Rome"}, nil),
		NewTemperatureSeries("temp", readings),
	)
	defer df.Release()

	var buf strings.Builder
	require.NoError(t, df.WriteCSV(&buf, DefaultCSVOptions()))
	assert.Equal(t, "city,temp\nOslo,21.5\u205F\u2103\nRome,nan\u205F\u2103\n", buf.String())

	back, err := ReadCSV(strings.NewReader(buf.String()), DefaultCSVOptions(), nil)
	require.NoError(t, err)
	defer back.Release()

	col, ok := back.Column("temp")
	require.True(t, ok)
	assert.True(t, IsTemperatureType(col))
	assert.Equal(t, []bool{false, true}, col.IsNA())
}
