package dataframe

import (
	"github.com/paveg/siunit/internal/series"
)

// ISeries provides a type-erased interface for columns of any type
type ISeries = series.Column
