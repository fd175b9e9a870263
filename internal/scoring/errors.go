package scoring

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a malformed response vector or schema. Scoring
// never proceeds past it.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes a single response that failed validation.
type InputError struct {
	Index  int // -1 when the error concerns the vector as a whole
	Value  int
	Reason string
}

func (e *InputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: response %d = %d: %s", e.Index, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
