package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownMonth means the seasonal table has no entry for a month.
var ErrUnknownMonth = errors.New("no seasonal characters for month")

// GenerationErrorPrefix starts every user-visible generation failure.
const GenerationErrorPrefix = "Error generating Chinese name: "

// GenerationError wraps anything that stopped a generation.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }

// UserMessage is the text shown on the form.
func (e *GenerationError) UserMessage() string { return GenerationErrorPrefix + e.Err.Error() }

// BirthdateError reports a birthdate that is not YYYY-MM-DD.
type BirthdateError struct {
	Value string
	Err   error
}

func (e *BirthdateError) Error() string {
	return fmt.Sprintf("birthdate %q is not a YYYY-MM-DD date: %v", e.Value, e.Err)
}

func (e *BirthdateError) Unwrap() error { return e.Err }
