// Package errors provides standardized error types for temperature array operations.
// Every failure raised by the parser, the array engine and the host adapter is an
// ArrayError carrying the operation name and one of a small set of error kinds.
package errors

import (
	"fmt"
)

// Kind classifies an ArrayError.
type Kind int

const (
	// KindInternal is an unexpected failure inside the library.
	KindInternal Kind = iota
	// KindInvalidShape is raised for input that is not one-dimensional.
	KindInvalidShape
	// KindInvalidTake is raised for take indices that are not valid for a fill take.
	KindInvalidTake
	// KindTypeMismatch is raised when an operand is not a compatible array.
	KindTypeMismatch
	// KindDtypeConstruction is raised when a dtype name is not recognised.
	KindDtypeConstruction
	// KindUnsupportedKey is raised by delete for keys it cannot interpret.
	KindUnsupportedKey
	// KindIndexOutOfBounds is raised for positions outside [-len, len).
	KindIndexOutOfBounds
	// KindLengthMismatch is raised when two operands must have equal lengths.
	KindLengthMismatch
	// KindInvalidValue is raised when a scalar cannot be parsed as a temperature.
	KindInvalidValue
)

var kindNames = map[Kind]string{
	KindInternal:          "internal",
	KindInvalidShape:      "invalid shape",
	KindInvalidTake:       "invalid take",
	KindTypeMismatch:      "type mismatch",
	KindDtypeConstruction: "dtype construction",
	KindUnsupportedKey:    "unsupported key",
	KindIndexOutOfBounds:  "index out of bounds",
	KindLengthMismatch:    "length mismatch",
	KindInvalidValue:      "invalid value",
}

// String returns the human readable kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ArrayError represents standardized errors across all array operations
type ArrayError struct {
	Op      string // Operation name (e.g., "Take", "Parse", "Equals")
	Kind    Kind   // Error classification
	Message string // Human-readable error description
	Hint    string // Optional remediation hint
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *ArrayError) Error() string {
	msg := fmt.Sprintf("%s operation failed: %s", e.Op, e.Message)
	if e.Op == "" {
		msg = e.Message
	}
	if e.Hint != "" {
		msg += " (Hint: " + e.Hint + ")"
	}
	return msg
}

// Unwrap returns the underlying cause for error wrapping support
func (e *ArrayError) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is().
// A target that carries only a Kind (the package sentinels) matches any error of
// that kind; otherwise Op, Kind and Message must all match.
func (e *ArrayError) Is(target error) bool {
	other, ok := target.(*ArrayError)
	if !ok {
		return false
	}
	if other.Op == "" && other.Message == "" {
		return e.Kind == other.Kind
	}
	return e.Op == other.Op && e.Kind == other.Kind && e.Message == other.Message
}

// WithHint returns a copy of the error carrying a remediation hint.
func (e *ArrayError) WithHint(hint string) *ArrayError {
	clone := *e
	clone.Hint = hint
	return &clone
}

// Sentinels for errors.Is checks against a kind.
var (
	ErrInvalidShape      = &ArrayError{Kind: KindInvalidShape}
	ErrInvalidTake       = &ArrayError{Kind: KindInvalidTake}
	ErrTypeMismatch      = &ArrayError{Kind: KindTypeMismatch}
	ErrDtypeConstruction = &ArrayError{Kind: KindDtypeConstruction}
	ErrUnsupportedKey    = &ArrayError{Kind: KindUnsupportedKey}
	ErrIndexOutOfBounds  = &ArrayError{Kind: KindIndexOutOfBounds}
	ErrLengthMismatch    = &ArrayError{Kind: KindLengthMismatch}
	ErrInvalidValue      = &ArrayError{Kind: KindInvalidValue}
)

// Common error constructors for consistent error creation

// NewInvalidShapeError creates an error for input that is not one-dimensional
func NewInvalidShapeError(op, message string) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindInvalidShape,
		Message: message,
	}
}

// NewInvalidTakeError creates an error for take indices rejected under allow_fill
func NewInvalidTakeError(op, message string) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindInvalidTake,
		Message: message,
	}
}

// NewTypeMismatchError creates an error for an operand of an incompatible type
func NewTypeMismatchError(op string, operand any) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindTypeMismatch,
		Message: fmt.Sprintf("unsupported operand type: %T", operand),
	}
}

// NewDtypeConstructionError creates the error raised for an unknown dtype string
func NewDtypeConstructionError(typeName, value string) *ArrayError {
	return &ArrayError{
		Op:      "ConstructFromString",
		Kind:    KindDtypeConstruction,
		Message: fmt.Sprintf("Cannot construct a '%s' from '%s'", typeName, value),
	}
}

// NewUnsupportedKeyError creates an error for a key shape delete cannot handle
func NewUnsupportedKeyError(op string, key any) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindUnsupportedKey,
		Message: fmt.Sprintf("invalid index for removing column from table: %v", key),
	}
}

// NewIndexError creates an error for out-of-bounds positions
func NewIndexError(op string, index, length int) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindIndexOutOfBounds,
		Message: fmt.Sprintf("index %d out of bounds for length %d", index, length),
	}
}

// NewLengthMismatchError creates an error for operands of different lengths
func NewLengthMismatchError(op string, expected, actual int) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindLengthMismatch,
		Message: fmt.Sprintf("expected length %d, got %d", expected, actual),
	}
}

// NewInvalidValueError creates an error for a scalar that cannot be parsed
func NewInvalidValueError(op, value string, cause error) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindInvalidValue,
		Message: fmt.Sprintf("could not convert %q to a temperature", value),
		Cause:   cause,
	}
}

// NewInvalidArgumentError creates an error for an argument outside its domain
func NewInvalidArgumentError(op, message string) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindInvalidValue,
		Message: message,
	}
}

// NewCastError creates an error for an unsupported dtype conversion
func NewCastError(op, from, to string) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindTypeMismatch,
		Message: fmt.Sprintf("cannot cast %s to %q", from, to),
	}
}

// NewInternalError creates an error for internal operation failures
func NewInternalError(op string, cause error) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindInternal,
		Message: "internal error occurred",
		Cause:   cause,
	}
}
