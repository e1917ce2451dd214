package extension

import (
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/paveg/siunit/internal/temperature"
)

// CelsiusBuilder appends temperatures to a CelsiusArray, converting Fahrenheit
// values to Celsius.
type CelsiusBuilder struct {
	*array.ExtensionBuilder
}

func NewCelsiusBuilder(builder *array.ExtensionBuilder) *CelsiusBuilder {
	builder.Retain()
	return &CelsiusBuilder{ExtensionBuilder: builder}
}

func (b *CelsiusBuilder) storage() *array.Float64Builder {
	return b.ExtensionBuilder.Builder.(*array.Float64Builder)
}

func (b *CelsiusBuilder) Append(v temperature.Value) {
	b.storage().Append(v.Celsius())
}

func (b *CelsiusBuilder) AppendValues(v []float64, valid []bool) {
	b.storage().AppendValues(v, valid)
}

// AppendValueFromString parses s with the temperature grammar.
func (b *CelsiusBuilder) AppendValueFromString(s string) error {
	if s == array.NullValueStr {
		b.AppendNull()
		return nil
	}
	v, err := temperature.Parse(s)
	if err != nil {
		return err
	}
	b.Append(v)
	return nil
}

// NewCelsiusArray builds the array and resets the builder.
func (b *CelsiusBuilder) NewCelsiusArray() *CelsiusArray {
	return b.NewExtensionArray().(*CelsiusArray)
}

var _ array.Builder = (*CelsiusBuilder)(nil)
