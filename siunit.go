// Package siunit provides typed, NaN-aware temperature columns backed by Apache
// Arrow buffers, together with the arrow extension type and a small frame to
// host them. This package is the sole public API for the library.
package siunit

import (
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/siunit/internal/config"
	"github.com/paveg/siunit/internal/dataframe"
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/extarray"
	"github.com/paveg/siunit/internal/extension"
	"github.com/paveg/siunit/internal/parser"
	"github.com/paveg/siunit/internal/series"
	"github.com/paveg/siunit/internal/temparray"
	"github.com/paveg/siunit/internal/temperature"
	"go.uber.org/zap"
)

type (
	// Value is a single temperature reading tagged with its unit.
	Value = temperature.Value
	// Unit is the temperature scale of a Value.
	Unit = temperature.Unit
	// Input is a value accepted by the array constructors and setters.
	Input = parser.Input
	// TemperatureArray is a one-dimensional array of Celsius readings.
	TemperatureArray = temparray.Array
	// Option configures array construction.
	Option = extarray.Option
	// TakeOptions controls fill behaviour of Take.
	TakeOptions = extarray.TakeOptions
	// CelsiusType is the arrow extension type of temperature columns.
	CelsiusType = extension.CelsiusType
	// CelsiusArray is a temperature column exported to arrow.
	CelsiusArray = extension.CelsiusArray
	// Dtype describes a registered column type.
	Dtype = extension.Dtype
	// Registry resolves dtype names.
	Registry = extension.Registry
	// Config holds library-wide settings.
	Config = config.Config
	// ISeries provides a type-erased interface for columns of any type.
	ISeries = series.Column
	// Element is the set of Go types a plain column can hold.
	Element = series.Element
)

const (
	Celsius    = temperature.Celsius
	Fahrenheit = temperature.Fahrenheit
)

// Error sentinels for errors.Is.
var (
	ErrInvalidShape      = errors.ErrInvalidShape
	ErrInvalidTake       = errors.ErrInvalidTake
	ErrTypeMismatch      = errors.ErrTypeMismatch
	ErrDtypeConstruction = errors.ErrDtypeConstruction
	ErrUnsupportedKey    = errors.ErrUnsupportedKey
	ErrIndexOutOfBounds  = errors.ErrIndexOutOfBounds
	ErrLengthMismatch    = errors.ErrLengthMismatch
	ErrInvalidValue      = errors.ErrInvalidValue
)

// C returns a Celsius value.
func C(v float64) Value { return temperature.C(v) }

// F returns a Fahrenheit value.
func F(v float64) Value { return temperature.F(v) }

// NA returns the missing value.
func NA() Value { return temperature.NA() }

// ParseValue parses "21.5", "21.5 ℃", "21.5°C" or a Fahrenheit string such as "70°F".
func ParseValue(s string) (Value, error) {
	return temperature.Parse(s)
}

// WithCopy forces a fresh buffer even when the input is already a float64 slice.
func WithCopy(copy bool) Option { return extarray.WithCopy(copy) }

// WithAllocator sets the allocator for the array and every array derived from it.
func WithAllocator(mem memory.Allocator) Option { return extarray.WithAllocator(mem) }

// WithFill returns take options filling -1 positions with v.
func WithFill(v float64) *TakeOptions { return extarray.WithFill(v) }

// WithNAFill returns take options filling -1 positions with NA.
func WithNAFill() *TakeOptions { return extarray.WithNAFill() }

// NewArray builds a temperature array from values: a []float64 buffer (shared
// unless the configured default or WithCopy asks for a copy), numeric or string
// slices, sets, temperature values, or a single scalar.
func NewArray(values any, opts ...Option) (*TemperatureArray, error) {
	in, err := parser.FromAny(values)
	if err != nil {
		return nil, err
	}
	return NewArrayFromInput(in, opts...)
}

// NewArrayFromInput is NewArray for an already classified Input.
func NewArrayFromInput(in Input, opts ...Option) (*TemperatureArray, error) {
	defaults := []Option{extarray.WithCopy(config.GetGlobalConfig().CopyOnConstruct)}
	return temparray.New(in, append(defaults, opts...)...)
}

// ToTemperature converts values into a temperature array without any options.
func ToTemperature(values any) (*TemperatureArray, error) {
	in, err := parser.FromAny(values)
	if err != nil {
		return nil, err
	}
	return temparray.ToTemperature(in)
}

// FromValues builds an array from temperature values; Fahrenheit values are
// converted to Celsius.
func FromValues(values ...Value) (*TemperatureArray, error) {
	return temparray.FromValues(values...)
}

// FromSequenceOfStrings parses every string as a Celsius reading.
func FromSequenceOfStrings(values []string) (*TemperatureArray, error) {
	return extension.FromSequenceOfStrings(values)
}

// FromFactorized rebuilds an array from factorized values.
func FromFactorized(values []float64, original *TemperatureArray) (*TemperatureArray, error) {
	return temparray.FromFactorized(values, original)
}

// Concat joins arrays in order into a new array.
func Concat(arrays ...*TemperatureArray) (*TemperatureArray, error) {
	return temparray.Concat(arrays...)
}

// Compare applies a comparison operator ("==", "!=", "<", "<=", ">", ">=")
// element-wise to two temperature arrays or celsius arrow arrays.
func Compare(op string, left, right any) ([]bool, error) {
	return extension.Compare(op, left, right)
}

// IsTemperatureType reports whether v is a temperature array, column or dtype.
func IsTemperatureType(v any) bool {
	if _, ok := v.(*series.Temperature); ok {
		return true
	}
	return extension.IsTemperatureType(v)
}

// NewCelsiusType returns the arrow extension type for temperature columns.
func NewCelsiusType() *CelsiusType {
	return extension.NewCelsiusType()
}

// NewCelsiusArray exports arr to arrow without copying. The caller releases the result.
func NewCelsiusArray(arr *TemperatureArray) *CelsiusArray {
	return extension.NewCelsiusArray(arr)
}

// NewRegistry returns a dtype registry with the celsius type registered.
func NewRegistry(logger *zap.Logger) *Registry {
	return extension.NewRegistry(logger)
}

// ConstructDtype resolves a dtype name such as "celsius".
func ConstructDtype(name string) (Dtype, error) {
	return extension.NewCelsiusType().ConstructFromString(name)
}

// SetConfig validates cfg and makes it the library-wide default.
func SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	config.SetGlobalConfig(cfg)
	return nil
}

// GetConfig returns the library-wide configuration.
func GetConfig() Config {
	return config.GetGlobalConfig()
}

// NewSeries creates a new typed Series from values.
func NewSeries[T Element](name string, values []T, mem memory.Allocator) ISeries {
	return series.New(name, values, mem)
}

// NewTemperatureSeries wraps arr as a named column. The column owns arr.
func NewTemperatureSeries(name string, arr *TemperatureArray) ISeries {
	return series.NewTemperature(name, arr)
}

// DataFrame is the public type for a DataFrame.
// It wraps the internal dataframe.DataFrame to hide implementation details.
type DataFrame struct {
	df *dataframe.DataFrame
}

// NewDataFrame creates a new DataFrame from ISeries.
func NewDataFrame(columns ...ISeries) *DataFrame {
	return &DataFrame{df: dataframe.New(columns...)}
}

// Columns returns the column names in order.
func (d *DataFrame) Columns() []string {
	return d.df.Columns()
}

// Len returns the number of rows.
func (d *DataFrame) Len() int {
	return d.df.Len()
}

// Width returns the number of columns.
func (d *DataFrame) Width() int {
	return d.df.Width()
}

// Column returns the column with the given name.
func (d *DataFrame) Column(name string) (ISeries, bool) {
	return d.df.Column(name)
}

// Select returns a new DataFrame with only the specified columns.
func (d *DataFrame) Select(names ...string) *DataFrame {
	return &DataFrame{df: d.df.Select(names...)}
}

// Drop returns a new DataFrame without the specified columns.
func (d *DataFrame) Drop(names ...string) *DataFrame {
	return &DataFrame{df: d.df.Drop(names...)}
}

// HasColumn returns true if the DataFrame has the given column.
func (d *DataFrame) HasColumn(name string) bool {
	return d.df.HasColumn(name)
}

// Take reindexes rows by position; with allowFill, -1 yields a missing row.
func (d *DataFrame) Take(indices []int, allowFill bool) (*DataFrame, error) {
	result, err := d.df.Take(indices, allowFill)
	if err != nil {
		return nil, err
	}
	return &DataFrame{df: result}, nil
}

// Slice returns a new DataFrame with rows from start to end (exclusive).
func (d *DataFrame) Slice(start, end int) *DataFrame {
	return &DataFrame{df: d.df.Slice(start, end)}
}

// Concat concatenates this DataFrame with others of the same schema.
func (d *DataFrame) Concat(others ...*DataFrame) (*DataFrame, error) {
	internalDfs := make([]*dataframe.DataFrame, len(others))
	for i, other := range others {
		internalDfs[i] = other.df
	}
	result, err := d.df.Concat(internalDfs...)
	if err != nil {
		return nil, err
	}
	return &DataFrame{df: result}, nil
}

// IsNA returns a boolean DataFrame marking missing values.
func (d *DataFrame) IsNA() *DataFrame {
	return &DataFrame{df: d.df.IsNA()}
}

// Rows renders up to limit rows as strings; a negative limit renders all rows.
func (d *DataFrame) Rows(limit int) [][]string {
	return d.df.Rows(limit)
}

// String returns a string representation of the DataFrame.
func (d *DataFrame) String() string {
	return d.df.String()
}

// Release frees the memory used by the DataFrame.
func (d *DataFrame) Release() {
	d.df.Release()
}
