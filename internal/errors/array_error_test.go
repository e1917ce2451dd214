package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/paveg/siunit/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestArrayError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *errors.ArrayError
		expected string
	}{
		{
			name: "Error with operation",
			err: &errors.ArrayError{
				Op:      "Take",
				Kind:    errors.KindInvalidTake,
				Message: "Invalid take for empty array. Must be all -1.",
			},
			expected: "Take operation failed: Invalid take for empty array. Must be all -1.",
		},
		{
			name:     "Dtype construction keeps the bare message",
			err:      &errors.ArrayError{Kind: errors.KindDtypeConstruction, Message: "bad"},
			expected: "bad",
		},
		{
			name: "Error with hint",
			err: (&errors.ArrayError{
				Op:      "Parse",
				Message: "could not convert",
			}).WithHint("strip the unit suffix"),
			expected: "Parse operation failed: could not convert (Hint: strip the unit suffix)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestArrayError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying error")
	err := errors.NewInvalidValueError("Parse", "abc", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.ErrorIs(t, err, cause)
}

func TestArrayError_Is(t *testing.T) {
	err1 := errors.NewIndexError("Get", 5, 3)
	err2 := errors.NewIndexError("Get", 5, 3)
	err3 := errors.NewIndexError("Take", 5, 3)

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.False(t, err1.Is(stderrors.New("different error")))

	wrapped := fmt.Errorf("wrapped: %w", err3)
	assert.ErrorIs(t, wrapped, errors.ErrIndexOutOfBounds)
	assert.NotErrorIs(t, wrapped, errors.ErrInvalidTake)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *errors.ArrayError
		sentinel error
		message  string
	}{
		{"invalid shape", errors.NewInvalidShapeError("Coerce", "values must be 1-D"),
			errors.ErrInvalidShape, "values must be 1-D"},
		{"invalid take", errors.NewInvalidTakeError("Take", "bad"), errors.ErrInvalidTake, "bad"},
		{"type mismatch", errors.NewTypeMismatchError("Lt", "a"), errors.ErrTypeMismatch,
			"unsupported operand type: string"},
		{"dtype construction", errors.NewDtypeConstructionError("CelsiusType", "kelvin"),
			errors.ErrDtypeConstruction, "Cannot construct a 'CelsiusType' from 'kelvin'"},
		{"unsupported key", errors.NewUnsupportedKeyError("Delete", 3), errors.ErrUnsupportedKey,
			"invalid index for removing column from table: 3"},
		{"length mismatch", errors.NewLengthMismatchError("Mask", 3, 2), errors.ErrLengthMismatch,
			"expected length 3, got 2"},
		{"invalid value", errors.NewInvalidValueError("Parse", "x", nil), errors.ErrInvalidValue,
			`could not convert "x" to a temperature`},
		{"invalid argument", errors.NewInvalidArgumentError("SliceStep", "slice step cannot be zero"),
			errors.ErrInvalidValue, "slice step cannot be zero"},
		{"cast", errors.NewCastError("AsType", "celsius", "int32"), errors.ErrTypeMismatch,
			`cannot cast celsius to "int32"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

func TestNewInternalError(t *testing.T) {
	cause := stderrors.New("memory allocation failed")
	err := errors.NewInternalError("Concat", cause)

	assert.Equal(t, "Concat", err.Op)
	assert.Equal(t, errors.KindInternal, err.Kind)
	assert.Equal(t, "internal error occurred", err.Message)
	assert.Equal(t, cause, err.Unwrap())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "invalid take", errors.KindInvalidTake.String())
	assert.Equal(t, "Kind(99)", errors.Kind(99).String())
}
