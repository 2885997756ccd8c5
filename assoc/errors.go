package assoc

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Array operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := assoc.New(42)
//	if errors.Is(err, assoc.ErrInvalidInput) {
//	    // 42 is neither a collection nor an object
//	}
//
// Missing keys are never reported as errors: lookups return a default value
// or a false presence flag instead.
var (
	// ErrInvalidInput is returned when a constructor or [Array.Replace] is
	// given a source that is not a collection, an iterator, an [Arrayable]
	// or a struct.
	ErrInvalidInput = errors.New("assoc: invalid input")

	// ErrConversion is returned (wrapped in a [*ConversionError]) by
	// [Array.ImplodeStrict] when a value cannot be converted to a string.
	ErrConversion = errors.New("assoc: value could not be converted to string")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("assoc: macro not found")
)

// ConversionError reports the key of an element that could not be
// stringified. It unwraps to [ErrConversion].
type ConversionError struct {
	Key   Key
	Value any
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("assoc: element with key [%s] could not be converted to string: %v", e.Key, e.Err)
}

// Unwrap makes errors.Is(err, ErrConversion) hold.
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Err}
}
