// Package extension adapts temperature arrays to host frameworks.
//
// CelsiusType is an arrow extension type over float64 storage that also reports
// the dtype metadata a tabular host needs (name, kind code, missing value).
// Types are made known through an explicit Registry rather than at import time.
package extension

import (
	"fmt"
	"math"
	"reflect"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/temparray"
	"github.com/paveg/siunit/internal/temperature"
)

const (
	// ExtensionName identifies the type in arrow metadata and in the registry.
	ExtensionName = temparray.DtypeName
	// TypeName is used in dtype construction errors.
	TypeName = "CelsiusType"
	// KindObject is the dtype kind code for boxed scalar values.
	KindObject = "O"
)

// CelsiusType describes columns of Celsius temperatures.
type CelsiusType struct {
	arrow.ExtensionBase
}

// NewCelsiusType returns the Celsius dtype.
func NewCelsiusType() *CelsiusType {
	return &CelsiusType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.PrimitiveTypes.Float64}}
}

func (*CelsiusType) ArrayType() reflect.Type { return reflect.TypeOf(CelsiusArray{}) }

func (t *CelsiusType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != ExtensionName {
		return nil, fmt.Errorf("type identifier did not match: '%s'", data)
	}
	if !arrow.TypeEqual(storageType, arrow.PrimitiveTypes.Float64) {
		return nil, fmt.Errorf("invalid storage type for %s: %s", TypeName, storageType.Name())
	}
	return NewCelsiusType(), nil
}

func (t *CelsiusType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (*CelsiusType) ExtensionName() string { return ExtensionName }

func (*CelsiusType) Serialize() string { return ExtensionName }

func (t *CelsiusType) String() string { return fmt.Sprintf("%s<storage=%s>", TypeName, t.Storage) }

func (*CelsiusType) NewBuilder(bldr *array.ExtensionBuilder) array.Builder {
	return NewCelsiusBuilder(bldr)
}

// DtypeName is the name columns are declared with.
func (*CelsiusType) DtypeName() string { return ExtensionName }

// Kind is the dtype kind code.
func (*CelsiusType) Kind() string { return KindObject }

// IsNumeric reports that the values support arithmetic reductions.
func (*CelsiusType) IsNumeric() bool { return true }

// IsBoolean is true for compatibility with hosts that use it to allow masking
// by the column.
func (*CelsiusType) IsBoolean() bool { return true }

// NAValue is the missing-value marker.
func (*CelsiusType) NAValue() float64 { return math.NaN() }

// RecordType is the storage element type.
func (*CelsiusType) RecordType() arrow.DataType { return arrow.PrimitiveTypes.Float64 }

// ScalarType is the boxed element type.
func (*CelsiusType) ScalarType() reflect.Type { return reflect.TypeFor[temperature.Value]() }

// ConstructArrayType returns the engine array type backing this dtype.
func (*CelsiusType) ConstructArrayType() reflect.Type { return reflect.TypeFor[temparray.Array]() }

// ConstructFromString returns t when s names it.
func (t *CelsiusType) ConstructFromString(s string) (Dtype, error) {
	if s != t.DtypeName() {
		return nil, errors.NewDtypeConstructionError(TypeName, s)
	}
	return t, nil
}

// NewArray wraps an engine array as an arrow extension array without copying.
func (t *CelsiusType) NewArray(arr *temparray.Array) *CelsiusArray {
	storage := arr.ArrowStorage()
	defer storage.Release()
	return array.NewExtensionArrayWithStorage(t, storage).(*CelsiusArray)
}

var (
	_ arrow.ExtensionType           = (*CelsiusType)(nil)
	_ array.ExtensionBuilderWrapper = (*CelsiusType)(nil)
	_ Dtype                         = (*CelsiusType)(nil)
)
