package prompt

import (
	"errors"
	"fmt"
)

// ErrNoInput is returned when the input stream ends before an answer starts.
var ErrNoInput = errors.New("no input available: EOF while reading a line")

// ParseError reports an answer that is not a number of the expected kind.
type ParseError struct {
	Field string
	Input string
	Kind  string // "integer" or "decimal"
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s for %s: %q", e.Kind, e.Field, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
