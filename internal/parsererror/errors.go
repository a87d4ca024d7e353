// Package parsererror defines the typed errors raised around receipt parsing.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrMalformedNumeric marks a token that looked like an amount but did not parse.
var ErrMalformedNumeric = errors.New("malformed numeric token")

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewMalformedNumeric builds the ParseError reported for an amount token that
// fails decimal parsing after '$' and ',' are stripped.
func NewMalformedNumeric(parser, field, value string, cause error) *ParseError {
	return &ParseError{
		Parser: parser,
		Field:  field,
		Value:  value,
		Err:    fmt.Errorf("%w: %v", ErrMalformedNumeric, cause),
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.FilePath == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an error where the input does not conform
// to the expected format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
