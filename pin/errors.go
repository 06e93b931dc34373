package pin

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Parse. Exactly one is reported per failure;
// use errors.Is to check for a specific condition.
var (
	// ErrEmptyInput indicates a zero-length token.
	ErrEmptyInput = errors.New("empty input")

	// ErrInputTooLong indicates a token longer than three bytes.
	ErrInputTooLong = errors.New("input longer than three bytes")

	// ErrMustContainOneLetter indicates no letter byte was found where one
	// was required.
	ErrMustContainOneLetter = errors.New("token must contain exactly one letter")

	// ErrInvalidStateModifier indicates the first byte is neither a letter
	// nor a state modifier.
	ErrInvalidStateModifier = errors.New("invalid state modifier")

	// ErrInvalidTerminalMarker indicates a letter was found but the bytes
	// following it do not form a valid terminal marker.
	ErrInvalidTerminalMarker = errors.New("invalid terminal marker")

	// ErrInvalidArgument indicates an invalid field value passed to New or
	// a With* setter.
	ErrInvalidArgument = errors.New("invalid argument")
)

// FieldError reports which Identifier field was given an invalid value.
// It wraps ErrInvalidArgument, so errors.Is(err, ErrInvalidArgument) holds
// and errors.As recovers the field name.
type FieldError struct {
	Field string // "piece", "side", or "state"
	Value any    // the rejected value
	Err   error
}

// Error returns a formatted message naming the bad field and value.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %v: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to work through the FieldError wrapper.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// invalidField builds the construction error for a single bad field.
func invalidField(field string, value any) error {
	return &FieldError{Field: field, Value: value, Err: ErrInvalidArgument}
}
