package table

import (
	"errors"
	"slices"
	"strings"
)

// Table is an immutable parsed table. Construct one with New or Parse.
type Table struct {
	headers     []string
	columnCount int
	rows        [][]string
}

// New builds a Table from headers and optional rows. Headers must not be
// empty and every row must have exactly len(headers) cells. The slices are
// copied, so later changes by the caller do not affect the table.
func New(headers []string, rows ...[]string) (*Table, error) {
	if len(headers) == 0 {
		return nil, ErrEmptyHeaders
	}
	columnCount := len(headers)
	copied := make([][]string, 0, len(rows))
	for i, row := range rows {
		if len(row) != columnCount {
			return nil, &RowWidthError{Row: i, Want: columnCount, Got: len(row)}
		}
		copied = append(copied, slices.Clone(row))
	}
	return &Table{
		headers:     slices.Clone(headers),
		columnCount: columnCount,
		rows:        copied,
	}, nil
}

// Parse reads a pipe-delimited table. The first line holds the headers,
// the second is skipped as a separator, and the rest are data rows.
// Any structural problem fails the whole parse.
func Parse(raw string) (*Table, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}
	lines := strings.Split(trimmed, "\n")

	headers, err := parseLine(lines[0])
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}

	var rows [][]string
	if len(lines) > 2 {
		rows = make([][]string, 0, len(lines)-2)
		for i, line := range lines[2:] {
			cells, err := parseLine(line)
			if err != nil {
				return nil, &ParseError{Line: i + 3, Err: err}
			}
			rows = append(rows, cells)
		}
	}

	t, err := New(headers, rows...)
	if err != nil {
		var rw *RowWidthError
		if errors.As(err, &rw) {
			return nil, &ParseError{Line: rw.Row + 3, Err: rw}
		}
		return nil, &ParseError{Line: 1, Err: err}
	}
	return t, nil
}

// parseLine splits one line on pipes and returns the trimmed cells between
// the leading and trailing boundary pipes.
func parseLine(line string) ([]string, error) {
	fragments := strings.Split(line, "|")
	for i, f := range fragments {
		fragments[i] = strings.TrimSpace(f)
	}

	if fragments[0] != "" {
		return nil, ErrMissingLeadingBoundary
	}
	fragments = fragments[1:]

	if len(fragments) == 0 || fragments[len(fragments)-1] != "" {
		return nil, ErrMissingTrailingBoundary
	}
	return fragments[:len(fragments)-1], nil
}

// Headers returns a copy of the header cells.
func (t *Table) Headers() []string {
	return slices.Clone(t.headers)
}

// Rows returns a copy of the data rows.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// ColumnCount is the number of header cells, which every row matches.
func (t *Table) ColumnCount() int {
	return t.columnCount
}

// Equal reports whether both tables have the same headers and rows.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !slices.Equal(t.headers, other.headers) || len(t.rows) != len(other.rows) {
		return false
	}
	for i := range t.rows {
		if !slices.Equal(t.rows[i], other.rows[i]) {
			return false
		}
	}
	return true
}
