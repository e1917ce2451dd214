package common

import (
	"fmt"
)

// TypeConverter provides common type conversion utilities.
type TypeConverter struct{}

// NewTypeConverter creates a new TypeConverter instance.
func NewTypeConverter() *TypeConverter {
	return &TypeConverter{}
}

// ToFloat64 converts Go numeric types to float64. Integers wider than 53 bits
// are rounded to the nearest representable float, never truncated.
func (tc *TypeConverter) ToFloat64(value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

// IsNumericType checks if a value is of a numeric type.
func (tc *TypeConverter) IsNumericType(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

// Default converter instance for convenience.
var defaultConverter = NewTypeConverter()

// ToFloat64 converts numeric types to float64 using the default converter.
func ToFloat64(value any) (float64, error) {
	return defaultConverter.ToFloat64(value)
}

// IsNumericType checks if a value is numeric using the default converter.
func IsNumericType(value any) bool {
	return defaultConverter.IsNumericType(value)
}
