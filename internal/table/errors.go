package table

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input has no content after trimming.
	ErrEmptyInput = errors.New("table must have at least a header line")
	// ErrMissingLeadingBoundary is returned when a line has content before its first pipe.
	ErrMissingLeadingBoundary = errors.New("line must not contain anything before the first pipe ('|')")
	// ErrMissingTrailingBoundary is returned when a line has content after its last pipe.
	ErrMissingTrailingBoundary = errors.New("line must not contain anything after the last pipe ('|')")
	// ErrEmptyHeaders is returned when the header row has no cells.
	ErrEmptyHeaders = errors.New("headers must not be empty")
	// ErrRowWidthMismatch is returned when a row's cell count differs from the header's.
	ErrRowWidthMismatch = errors.New("row must be as long as the header")
)

// ParseError locates a structural failure on a specific input line.
// Line is 1-based and counts lines of the trimmed input.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RowWidthError reports a data row whose cell count differs from the
// header's. Row is the 0-based index into the table's rows.
type RowWidthError struct {
	Row  int
	Want int
	Got  int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("row %d has %d cells, header has %d", e.Row+1, e.Got, e.Want)
}

func (e *RowWidthError) Unwrap() error {
	return ErrRowWidthMismatch
}

// LineOf returns the 1-based input line number an error points at, or 0
// when the error carries no location.
func LineOf(err error) int {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}
