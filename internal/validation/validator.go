// Package validation provides input validation utilities for array operations.
// It implements reusable validators for length consistency, positional bounds and
// the take-with-fill index rules shared by every array type.
package validation

import (
	"github.com/paveg/siunit/internal/errors"
)

// FillIndex is the take index that requests the fill value instead of an element.
const FillIndex = -1

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// LengthValidator validates array length consistency
type LengthValidator struct {
	expected int
	actual   int
	op       string
}

// NewLengthValidator creates a validator for length consistency
func NewLengthValidator(expected, actual int, op string) *LengthValidator {
	return &LengthValidator{
		expected: expected,
		actual:   actual,
		op:       op,
	}
}

// Validate checks if lengths match
func (v *LengthValidator) Validate() error {
	if v.expected != v.actual {
		return errors.NewLengthMismatchError(v.op, v.expected, v.actual)
	}
	return nil
}

// IndexValidator validates a position against [-length, length)
type IndexValidator struct {
	index  int
	length int
	op     string
}

// NewIndexValidator creates a validator for index operations
func NewIndexValidator(index, length int, op string) *IndexValidator {
	return &IndexValidator{
		index:  index,
		length: length,
		op:     op,
	}
}

// Validate checks if index is within bounds; negative positions count from the end
func (v *IndexValidator) Validate() error {
	if v.index < -v.length || v.index >= v.length {
		return errors.NewIndexError(v.op, v.index, v.length)
	}
	return nil
}

// TakeIndicesValidator validates the indices of a take operation
type TakeIndicesValidator struct {
	indices   []int
	length    int
	allowFill bool
	op        string
}

// NewTakeIndicesValidator creates a validator for take indices
func NewTakeIndicesValidator(indices []int, length int, allowFill bool, op string) *TakeIndicesValidator {
	return &TakeIndicesValidator{
		indices:   indices,
		length:    length,
		allowFill: allowFill,
		op:        op,
	}
}

// Validate applies the take rules. With allowFill, an empty source only accepts
// FillIndex, and no index may be below FillIndex. Without allowFill, indices
// follow positional bounds.
func (v *TakeIndicesValidator) Validate() error {
	if !v.allowFill {
		for _, idx := range v.indices {
			if err := NewIndexValidator(idx, v.length, v.op).Validate(); err != nil {
				return err
			}
		}
		return nil
	}

	if v.length == 0 {
		for _, idx := range v.indices {
			if idx != FillIndex {
				return errors.NewInvalidTakeError(v.op, "Invalid take for empty array. Must be all -1.")
			}
		}
		return nil
	}

	for _, idx := range v.indices {
		if idx < FillIndex {
			return errors.NewInvalidTakeError(v.op,
				"Invalid value in 'indices'. Must be all >= -1 for 'allow_fill=True'")
		}
	}
	for _, idx := range v.indices {
		if idx >= v.length {
			return errors.NewIndexError(v.op, idx, v.length)
		}
	}
	return nil
}

// CompoundValidator combines multiple validators
type CompoundValidator struct {
	validators []Validator
}

// NewCompoundValidator creates a validator that checks multiple conditions
func NewCompoundValidator(validators ...Validator) *CompoundValidator {
	return &CompoundValidator{
		validators: validators,
	}
}

// Validate runs all validators and returns the first error encountered
func (v *CompoundValidator) Validate() error {
	for _, validator := range v.validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Convenience validation functions

// ValidateLength is a convenience function for length validation
func ValidateLength(expected, actual int, op string) error {
	return NewLengthValidator(expected, actual, op).Validate()
}

// ValidateIndex is a convenience function for index validation
func ValidateIndex(index, length int, op string) error {
	return NewIndexValidator(index, length, op).Validate()
}

// ValidateTakeIndices is a convenience function for take index validation
func ValidateTakeIndices(indices []int, length int, allowFill bool, op string) error {
	return NewTakeIndicesValidator(indices, length, allowFill, op).Validate()
}

// NormalizeIndex validates index and resolves a negative position from the end.
func NormalizeIndex(index, length int, op string) (int, error) {
	if err := ValidateIndex(index, length, op); err != nil {
		return 0, err
	}
	if index < 0 {
		index += length
	}
	return index, nil
}
