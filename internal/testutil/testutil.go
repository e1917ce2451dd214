// Package testutil provides common testing utilities shared by the siunit test
// suites.
//
// It covers:
// - Checked allocator setup with a leak assertion on release
// - Standard weather DataFrames with a temperature column
// - Assertions over temperature buffers and frames
package testutil

import (
	"math"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/siunit/internal/dataframe"
	"github.com/paveg/siunit/internal/extarray"
	"github.com/paveg/siunit/internal/series"
	"github.com/paveg/siunit/internal/temparray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// defaultRowCount is the default number of rows in test DataFrames.
	defaultRowCount = 4
)

// TestMemoryContext provides a checked allocator that asserts every byte was
// freed when it is released.
type TestMemoryContext struct {
	Allocator *memory.CheckedAllocator
	cleanup   func()
}

// Release performs cleanup of the memory context.
func (tmc *TestMemoryContext) Release() {
	if tmc.cleanup != nil {
		tmc.cleanup()
	}
}

// SetupMemoryTest creates a checked allocator for tests.
// Returns a TestMemoryContext that should be released with defer after every
// array built from it has been released.
//
// Example usage:
//
//	mem := testutil.SetupMemoryTest(t)
//	defer mem.Release()
func SetupMemoryTest(tb testing.TB) *TestMemoryContext {
	tb.Helper()
	allocator := memory.NewCheckedAllocator(memory.NewGoAllocator())

	return &TestMemoryContext{
		Allocator: allocator,
		cleanup: func() {
			allocator.AssertSize(tb, 0)
		},
	}
}

// CreateTestArray copies values into a temperature array owned by allocator.
func CreateTestArray(allocator memory.Allocator, values ...float64) *temparray.Array {
	return temparray.FromBuffer(values, extarray.WithCopy(true), extarray.WithAllocator(allocator))
}

// TestDataFrameOption configures test DataFrame creation.
type TestDataFrameOption func(*testDataFrameConfig)

type testDataFrameConfig struct {
	includeNA bool
	rowCount  int
	withRain  bool
}

// WithNA replaces every third reading with NA.
func WithNA() TestDataFrameOption {
	return func(cfg *testDataFrameConfig) {
		cfg.includeNA = true
	}
}

// WithRowCount sets the number of rows in test data.
func WithRowCount(count int) TestDataFrameOption {
	return func(cfg *testDataFrameConfig) {
		cfg.rowCount = count
	}
}

// WithRainColumn includes a 'rain' boolean column.
func WithRainColumn() TestDataFrameOption {
	return func(cfg *testDataFrameConfig) {
		cfg.withRain = true
	}
}

// CreateTestDataFrame creates a standard weather DataFrame.
//
// Default DataFrame includes:
// - city (string): ["Oslo", "Rome", "Lima", "Cairo"]
// - temp (celsius): [-3.0, 14.5, 19.0, 28.5]
//
// Example usage:
//
//	mem := testutil.SetupMemoryTest(t)
//	defer mem.Release()
//	df := testutil.CreateTestDataFrame(mem.Allocator)
//	defer df.Release()
func CreateTestDataFrame(allocator memory.Allocator, opts ...TestDataFrameOption) *dataframe.DataFrame {
	cfg := &testDataFrameConfig{
		rowCount: defaultRowCount,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	readings := generateReadings(cfg.rowCount)
	if cfg.includeNA {
		for i := 2; i < len(readings); i += 3 {
			readings[i] = math.NaN()
		}
	}

	seriesList := []dataframe.ISeries{
		series.New("city", generateCities(cfg.rowCount), allocator),
		series.NewTemperature("temp", CreateTestArray(allocator, readings...)),
	}

	if cfg.withRain {
		seriesList = append(seriesList, series.New("rain", generateRainFlags(cfg.rowCount), allocator))
	}

	return dataframe.New(seriesList...)
}

// AssertValues compares a temperature array with expected Celsius readings,
// treating NaN positions as equal.
func AssertValues(t *testing.T, expected []float64, arr *temparray.Array) {
	t.Helper()

	require.NotNil(t, arr, "array should not be nil")
	actual := arr.Values()
	require.Len(t, actual, len(expected), "array length should match")

	for i, want := range expected {
		if math.IsNaN(want) {
			assert.True(t, math.IsNaN(actual[i]), "position %d should be NA", i)
			continue
		}
		assert.Equal(t, want, actual[i], "position %d", i)
	}
}

// AssertDataFrameEqual compares DataFrames by shape, column order and rendered rows.
func AssertDataFrameEqual(t *testing.T, expected, actual *dataframe.DataFrame) {
	t.Helper()

	require.NotNil(t, expected, "expected DataFrame should not be nil")
	require.NotNil(t, actual, "actual DataFrame should not be nil")

	assert.Equal(t, expected.Len(), actual.Len(), "DataFrame lengths should match")
	assert.Equal(t, expected.Width(), actual.Width(), "DataFrame widths should match")
	assert.Equal(t, expected.Columns(), actual.Columns(), "DataFrame columns should match")
	assert.Equal(t, expected.Rows(-1), actual.Rows(-1), "DataFrame rows should match")
}

// AssertDataFrameHasColumns verifies that a DataFrame has the expected columns.
func AssertDataFrameHasColumns(t *testing.T, df *dataframe.DataFrame, expectedColumns []string) {
	t.Helper()

	require.NotNil(t, df, "DataFrame should not be nil")

	actualColumns := df.Columns()
	assert.Len(t, actualColumns, len(expectedColumns), "column count should match")

	for _, col := range expectedColumns {
		assert.True(t, df.HasColumn(col), "DataFrame should have column %s", col)
	}
}

// Helper functions for generating test data

func generateCities(count int) []string {
	baseCities := []string{"Oslo", "Rome", "Lima", "Cairo", "Perth", "Quito", "Seoul", "Tunis"}
	cities := make([]string, count)
	for i := range count {
		cities[i] = baseCities[i%len(baseCities)]
	}
	return cities
}

func generateReadings(count int) []float64 {
	baseReadings := []float64{-3.0, 14.5, 19.0, 28.5, 22.0, 13.5, 4.0, 17.5}
	readings := make([]float64, count)
	for i := range count {
		readings[i] = baseReadings[i%len(baseReadings)]
	}
	return readings
}

func generateRainFlags(count int) []bool {
	baseFlags := []bool{true, false, false, true, false, true, true, false}
	flags := make([]bool, count)
	for i := range count {
		flags[i] = baseFlags[i%len(baseFlags)]
	}
	return flags
}
