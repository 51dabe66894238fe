// Package parsererror defines the typed errors used by the extraction and
// parsing subsystems.
package parsererror

import "fmt"

// ExtractionError represents a failure to pull text out of a PDF document.
// Encrypted and corrupt files both surface through this type; callers treat
// it as "zero transactions for this file", never as a batch-fatal condition.
type ExtractionError struct {
	FileName  string
	Encrypted bool
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.Encrypted {
		return fmt.Sprintf("extraction failed for %s: document is encrypted", e.FileName)
	}
	return fmt.Sprintf("extraction failed for %s: %v", e.FileName, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ParseError represents an error during parsing of an individual value.
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

// InvalidFormatError represents an error where an input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
