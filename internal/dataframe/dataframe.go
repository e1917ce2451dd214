// Package dataframe provides a small column-ordered frame over series, used to
// exercise temperature columns the way a host table would.
package dataframe

import (
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/series"
)

// DataFrame represents a table of data with typed columns
type DataFrame struct {
	columns map[string]ISeries
	order   []string // Maintains column order
}

// New creates a new DataFrame from a slice of ISeries
func New(series ...ISeries) *DataFrame {
	columns := make(map[string]ISeries)
	order := make([]string, 0, len(series))

	for _, s := range series {
		name := s.Name()
		if _, exists := columns[name]; !exists {
			order = append(order, name)
		}
		columns[name] = s
	}

	return &DataFrame{
		columns: columns,
		order:   order,
	}
}

// Columns returns the column names in order
func (df *DataFrame) Columns() []string {
	if len(df.order) == 0 {
		return []string{}
	}
	return append([]string(nil), df.order...)
}

// Len returns the number of rows (assumes all columns have same length)
func (df *DataFrame) Len() int {
	if len(df.order) == 0 {
		return 0
	}
	return df.columns[df.order[0]].Len()
}

// Width returns the number of columns
func (df *DataFrame) Width() int {
	return len(df.columns)
}

// Column returns the series for the given column name
func (df *DataFrame) Column(name string) (ISeries, bool) {
	s, exists := df.columns[name]
	return s, exists
}

// Select returns a frame with the named columns. Columns are shared with df.
func (df *DataFrame) Select(names ...string) *DataFrame {
	selected := make([]ISeries, 0, len(names))
	for _, name := range names {
		if s, exists := df.columns[name]; exists {
			selected = append(selected, s)
		}
	}
	return New(selected...)
}

// Drop returns a frame without the named columns. Columns are shared with df.
func (df *DataFrame) Drop(names ...string) *DataFrame {
	dropSet := make(map[string]bool, len(names))
	for _, name := range names {
		dropSet[name] = true
	}

	kept := make([]ISeries, 0, len(df.order))
	for _, name := range df.order {
		if !dropSet[name] {
			kept = append(kept, df.columns[name])
		}
	}
	return New(kept...)
}

// HasColumn checks if a column exists
func (df *DataFrame) HasColumn(name string) bool {
	_, exists := df.columns[name]
	return exists
}

// Take reindexes every column by position. With allowFill, -1 produces a
// missing row.
func (df *DataFrame) Take(indices []int, allowFill bool) (*DataFrame, error) {
	taken := make([]ISeries, 0, len(df.order))
	for _, name := range df.order {
		col, err := df.columns[name].Take(indices, allowFill)
		if err != nil {
			releaseAll(taken)
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		taken = append(taken, col)
	}
	return New(taken...), nil
}

// Slice returns rows [start, end) as a new frame.
func (df *DataFrame) Slice(start, end int) *DataFrame {
	if start < 0 || end < 0 || start >= end || start >= df.Len() {
		return New()
	}
	end = min(end, df.Len())

	sliced := make([]ISeries, 0, len(df.order))
	for _, name := range df.order {
		sliced = append(sliced, df.columns[name].SliceRows(start, end))
	}
	return New(sliced...)
}

// Concat appends the rows of frames with the same schema.
func (df *DataFrame) Concat(others ...*DataFrame) (*DataFrame, error) {
	for _, other := range others {
		if !df.hasSameSchema(other) {
			return nil, errors.NewInvalidArgumentError("Concat", "frames must have the same columns and types")
		}
	}

	joined := make([]ISeries, 0, len(df.order))
	for _, name := range df.order {
		col, err := df.concatColumn(name, others)
		if err != nil {
			releaseAll(joined)
			return nil, err
		}
		joined = append(joined, col)
	}
	return New(joined...), nil
}

func (df *DataFrame) concatColumn(name string, others []*DataFrame) (ISeries, error) {
	first := df.columns[name]
	concatenator, ok := first.(series.Concatenator)
	if !ok {
		return nil, errors.NewTypeMismatchError("Concat", first)
	}

	rest := make([]ISeries, len(others))
	for i, other := range others {
		rest[i] = other.columns[name]
	}
	return concatenator.ConcatRows(rest...)
}

func (df *DataFrame) hasSameSchema(other *DataFrame) bool {
	if other == nil || len(df.order) != len(other.order) {
		return false
	}
	for i, name := range df.order {
		if other.order[i] != name {
			return false
		}
		left, right := safeDataType(df.columns[name]), safeDataType(other.columns[name])
		if left == nil || right == nil || !arrow.TypeEqual(left, right) {
			return false
		}
	}
	return true
}

// IsNA returns a boolean frame marking missing values in every column.
func (df *DataFrame) IsNA() *DataFrame {
	masks := make([]ISeries, 0, len(df.order))
	for _, name := range df.order {
		masks = append(masks, series.New(name, df.columns[name].IsNA(), nil))
	}
	return New(masks...)
}

// String returns a string representation of the DataFrame
func (df *DataFrame) String() string {
	if len(df.columns) == 0 {
		return "DataFrame[empty]"
	}

	parts := []string{fmt.Sprintf("DataFrame[%dx%d]", df.Len(), df.Width())}

	for _, name := range df.order {
		s := df.columns[name]
		parts = append(parts, fmt.Sprintf("  %s: %s", name, s.DataType().String()))
	}

	return strings.Join(parts, "\n")
}

// Rows renders up to limit rows as strings, one slice per row in column
// order. A negative limit renders every row.
func (df *DataFrame) Rows(limit int) [][]string {
	n := df.Len()
	if limit >= 0 {
		n = min(n, limit)
	}

	rows := make([][]string, n)
	for i := range rows {
		row := make([]string, len(df.order))
		for j, name := range df.order {
			row[j] = df.columns[name].GetAsString(i)
		}
		rows[i] = row
	}
	return rows
}

// Release releases all underlying Arrow memory
func (df *DataFrame) Release() {
	releaseAll(df.orderedColumns())
}

func (df *DataFrame) orderedColumns() []ISeries {
	out := make([]ISeries, 0, len(df.order))
	for _, name := range df.order {
		out = append(out, df.columns[name])
	}
	return out
}

func releaseAll(columns []ISeries) {
	for _, s := range columns {
		s.Release()
	}
}

// safeDataType safely gets the data type from a series, returning nil if the series has a nil array
func safeDataType(s ISeries) (result arrow.DataType) {
	if s == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
		}
	}()

	return s.DataType()
}
