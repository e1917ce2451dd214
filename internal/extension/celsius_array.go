package extension

import (
	"math"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/goccy/go-json"
	"github.com/paveg/siunit/internal/extarray"
	"github.com/paveg/siunit/internal/temparray"
	"github.com/paveg/siunit/internal/temperature"
)

// CelsiusArray is an arrow extension array of Celsius temperatures. Null slots
// and NaN values are both treated as missing.
type CelsiusArray struct {
	array.ExtensionArrayBase
}

// NewCelsiusArray exports an engine array as an arrow extension array without copying.
func NewCelsiusArray(arr *temparray.Array) *CelsiusArray {
	return NewCelsiusType().NewArray(arr)
}

func (a *CelsiusArray) storage() *array.Float64 {
	return a.Storage().(*array.Float64)
}

// Value returns the temperature at i.
func (a *CelsiusArray) Value(i int) temperature.Value {
	return temperature.C(a.storage().Value(i))
}

// IsMissing reports whether slot i is null or NaN.
func (a *CelsiusArray) IsMissing(i int) bool {
	return a.IsNull(i) || math.IsNaN(a.storage().Value(i))
}

func (a *CelsiusArray) ValueStr(i int) string {
	if a.IsNull(i) {
		return array.NullValueStr
	}
	return a.Value(i).String()
}

func (a *CelsiusArray) String() string {
	var o strings.Builder
	o.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		o.WriteString(a.ValueStr(i))
	}
	o.WriteString("]")
	return o.String()
}

func (a *CelsiusArray) MarshalJSON() ([]byte, error) {
	values := make([]any, a.Len())
	for i := 0; i < a.Len(); i++ {
		values[i] = a.GetOneForMarshal(i)
	}
	return json.Marshal(values)
}

func (a *CelsiusArray) GetOneForMarshal(i int) any {
	if a.IsMissing(i) {
		return nil
	}
	v := a.storage().Value(i)
	if math.IsInf(v, 0) {
		return a.Value(i).String()
	}
	return v
}

// Temperatures returns the engine array over the storage. Without copy the
// result shares the arrow buffer and must be released.
func (a *CelsiusArray) Temperatures(copyData bool) *temparray.Array {
	return extarray.FromArrow(temparray.Kind(), a.storage(), copyData)
}

var _ array.ExtensionArray = (*CelsiusArray)(nil)
