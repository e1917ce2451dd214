package io_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/paveg/siunit/internal/dataframe"
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/io"
	"github.com/paveg/siunit/internal/series"
	"github.com/paveg/siunit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVReaderInference(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	defer mem.Release()

	csvData := "city,temp,hour,rain,wind\n" +
		"Oslo,-3.0°C,1,true,2.5\n" +
		"Rome,70°F,2,false,\n" +
		"Lima,,3,,4\n"

	df, err := io.NewCSVReader(strings.NewReader(csvData), io.DefaultCSVOptions(), mem.Allocator).Read()
	require.NoError(t, err)
	defer df.Release()

	assert.Equal(t, 3, df.Len())
	assert.Equal(t, []string{"city", "temp", "hour", "rain", "wind"}, df.Columns())

	tests := []struct {
		column   string
		expected arrow.DataType
	}{
		{"city", arrow.BinaryTypes.String},
		{"hour", arrow.PrimitiveTypes.Int64},
		{"rain", arrow.FixedWidthTypes.Boolean},
		{"wind", arrow.PrimitiveTypes.Float64},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			col, ok := df.Column(tt.column)
			require.True(t, ok)
			assert.True(t, arrow.TypeEqual(tt.expected, col.DataType()))
		})
	}

	col, _ := df.Column("temp")
	temp, ok := col.(*series.Temperature)
	require.True(t, ok)
	values := temp.Values().Values()
	assert.Equal(t, -3.0, values[0])
	assert.InDelta(t, 21.111111, values[1], 1e-6)
	assert.True(t, math.IsNaN(values[2]))

	rain, _ := df.Column("rain")
	assert.Equal(t, []bool{false, false, true}, rain.IsNA())
}

func TestCSVReaderTemperatureColumns(t *testing.T) {
	opts := io.DefaultCSVOptions()
	opts.TemperatureColumns = []string{"temp"}

	df, err := io.NewCSVReader(strings.NewReader("temp\n24\nnan\n"), opts, nil).Read()
	require.NoError(t, err)
	defer df.Release()

	col, _ := df.Column("temp")
	_, ok := col.(*series.Temperature)
	require.True(t, ok)
	assert.Equal(t, []bool{false, true}, col.IsNA())

	_, err = io.NewCSVReader(strings.NewReader("temp\nwarm\n"), opts, nil).Read()
	assert.ErrorIs(t, err, errors.ErrInvalidValue)
}

func TestCSVReaderOptions(t *testing.T) {
	opts := io.DefaultCSVOptions()
	opts.Header = false
	opts.Delimiter = ';'

	df, err := io.NewCSVReader(strings.NewReader("a;1\nb;2\n"), opts, nil).Read()
	require.NoError(t, err)
	defer df.Release()
	assert.Equal(t, []string{"column_0", "column_1"}, df.Columns())
	assert.Equal(t, 2, df.Len())

	empty, err := io.NewCSVReader(strings.NewReader(""), io.DefaultCSVOptions(), nil).Read()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Width())
}

func TestCSVWriter(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	defer mem.Release()

	df := testutil.CreateTestDataFrame(mem.Allocator, testutil.WithRowCount(3), testutil.WithNA())
	defer df.Release()

	tests := []struct {
		name     string
		index    bool
		expected string
	}{
		{
			name:     "plain",
			expected: "city,temp\nOslo,-3.0\u205F\u2103\nRome,14.5\u205F\u2103\nLima,nan\u205F\u2103\n",
		},
		{
			name:     "with index",
			index:    true,
			expected: ",city,temp\n0,Oslo,-3.0\u205F\u2103\n1,Rome,14.5\u205F\u2103\n2,Lima,nan\u205F\u2103\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := io.DefaultCSVOptions()
			opts.Index = tt.index

			var buf bytes.Buffer
			require.NoError(t, io.NewCSVWriter(&buf, opts).Write(df))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	defer mem.Release()

	df := testutil.CreateTestDataFrame(mem.Allocator, testutil.WithRainColumn())
	defer df.Release()

	var buf bytes.Buffer
	require.NoError(t, io.NewCSVWriter(&buf, io.DefaultCSVOptions()).Write(df))

	back, err := io.NewCSVReader(&buf, io.DefaultCSVOptions(), mem.Allocator).Read()
	require.NoError(t, err)
	defer back.Release()

	testutil.AssertDataFrameEqual(t, df, back)
}

func TestCSVWriterNulls(t *testing.T) {
	df := dataframe.New(
		series.NewWithValidity("hour", []int64{1, 0}, []bool{true, false}, nil),
		series.New("city", []string{"a", "b"}, nil),
	)
	defer df.Release()

	var buf bytes.Buffer
	require.NoError(t, io.NewCSVWriter(&buf, io.DefaultCSVOptions()).Write(df))
	assert.Equal(t, "hour,city\n1,a\n,b\n", buf.String())
}
