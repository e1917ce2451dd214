package series

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// Column is the row-oriented surface a frame needs from a series, whatever its
// element type.
type Column interface {
	Name() string
	Len() int
	DataType() arrow.DataType
	IsNull(index int) bool
	String() string
	Array() arrow.Array
	Release()
	GetAsString(index int) string

	// IsNA reports, per row, whether the value is missing.
	IsNA() []bool
	// Take gathers rows by position. With allowFill, -1 yields a missing row.
	Take(indices []int, allowFill bool) (Column, error)
	// SliceRows returns rows [start, end) as a new column.
	SliceRows(start, end int) Column
}

// Concatenator is implemented by columns that can append rows of columns of the
// same type.
type Concatenator interface {
	ConcatRows(others ...Column) (Column, error)
}
