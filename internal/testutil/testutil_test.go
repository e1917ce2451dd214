package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateTestDataFrame(t *testing.T) {
	tests := []struct {
		name        string
		opts        []TestDataFrameOption
		expectedLen int
		columns     []string
	}{
		{"default", nil, defaultRowCount, []string{"city", "temp"}},
		{"row count", []TestDataFrameOption{WithRowCount(10)}, 10, []string{"city", "temp"}},
		{"rain column", []TestDataFrameOption{WithRainColumn()}, defaultRowCount, []string{"city", "temp", "rain"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := SetupMemoryTest(t)
			defer mem.Release()

			df := CreateTestDataFrame(mem.Allocator, tt.opts...)
			defer df.Release()

			assert.Equal(t, tt.expectedLen, df.Len())
			AssertDataFrameHasColumns(t, df, tt.columns)
		})
	}
}

func TestCreateTestDataFrameWithNA(t *testing.T) {
	mem := SetupMemoryTest(t)
	defer mem.Release()

	df := CreateTestDataFrame(mem.Allocator, WithNA(), WithRowCount(6))
	defer df.Release()

	temp, ok := df.Column("temp")
	assert.True(t, ok)
	assert.Equal(t, []bool{false, false, true, false, false, true}, temp.IsNA())
}

func TestCreateTestArray(t *testing.T) {
	mem := SetupMemoryTest(t)
	defer mem.Release()

	src := []float64{1, math.NaN(), 3}
	arr := CreateTestArray(mem.Allocator, src...)
	defer arr.Release()

	AssertValues(t, []float64{1, math.NaN(), 3}, arr)
	assert.NotSame(t, &src[0], &arr.Values()[0])
}

func TestAssertDataFrameEqual(t *testing.T) {
	mem := SetupMemoryTest(t)
	defer mem.Release()

	a := CreateTestDataFrame(mem.Allocator)
	b := CreateTestDataFrame(mem.Allocator)
	defer a.Release()
	defer b.Release()

	AssertDataFrameEqual(t, a, b)
}
