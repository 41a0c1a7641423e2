package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_JustHeader(t *testing.T) {
	tbl, err := Parse("| header |")
	require.NoError(t, err)
	assert.Equal(t, []string{"header"}, tbl.Headers())
	assert.Empty(t, tbl.Rows())
	assert.Equal(t, 1, tbl.ColumnCount())
}

func TestParse_HeaderAndSeparator(t *testing.T) {
	tbl, err := Parse("| h1 | h2 |\n|----|----|")
	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "h2"}, tbl.Headers())
	assert.Empty(t, tbl.Rows())
}

func TestParse_AllThreeRowTypes(t *testing.T) {
	tbl, err := Parse("| h1 | h2 |\n|----|----|\n| a | b |")
	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "h2"}, tbl.Headers())
	assert.Equal(t, [][]string{{"a", "b"}}, tbl.Rows())
}

func TestParse_ExtraWhitespace(t *testing.T) {
	want, err := Parse("| h1 | h2 |\n|----|----|\n| a | b |")
	require.NoError(t, err)

	got, err := Parse("  | h1 | h2 |  \n |----|----| \n | a   | b|\n")
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "whitespace changed the parsed table")
	assert.Equal(t, [][]string{{"a", "b"}}, got.Rows())
}

func TestParse_CRLF(t *testing.T) {
	tbl, err := Parse("| h1 | h2 |\r\n|---|---|\r\n| a | b |\r\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "h2"}, tbl.Headers())
	assert.Equal(t, [][]string{{"a", "b"}}, tbl.Rows())
}

func TestParse_SeparatorNotInspected(t *testing.T) {
	tbl, err := Parse("| h1 | h2 |\nanything at all\n| a | b |")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}}, tbl.Rows())
}

func TestParse_EmptyCells(t *testing.T) {
	tbl, err := Parse("| a | b |\n|---|---|\n|  | x |\n| y |   |")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"", "x"}, {"y", ""}}, tbl.Rows())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
		line int
	}{
		{"empty", "", ErrEmptyInput, 0},
		{"whitespace only", "  \n\t \n", ErrEmptyInput, 0},
		{"no leading pipe", "h1 | h2 |", ErrMissingLeadingBoundary, 1},
		{"no trailing pipe", "| h1 | h2", ErrMissingTrailingBoundary, 1},
		{"no pipes", "header", ErrMissingLeadingBoundary, 1},
		{"single pipe", "|", ErrEmptyHeaders, 1},
		{"bad data row", "| h |\n|---|\n| a |\nb |", ErrMissingLeadingBoundary, 4},
		{"blank data row", "| h |\n|---|\n| a |\n\n| b |", ErrMissingTrailingBoundary, 4},
		{"row too wide", "| h1 | h2 |\n|---|---|\n| a | b | c |", ErrRowWidthMismatch, 3},
		{"row too narrow", "| h1 | h2 |\n|---|---|\n| a | b |\n| c |", ErrRowWidthMismatch, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Parse(tt.raw)
			require.Error(t, err)
			assert.Nil(t, tbl)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.line, LineOf(err))
		})
	}
}

func TestParse_RowWidthCheckedAfterAllLines(t *testing.T) {
	// The width mismatch on line 3 is not reported because line 4 is
	// structurally broken and line parsing runs first.
	_, err := Parse("| h1 | h2 |\n|---|---|\n| a |\nbroken")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingLeadingBoundary)
	assert.Equal(t, 4, LineOf(err))
}

func TestParse_RowWidthErrorDetails(t *testing.T) {
	_, err := Parse("| h1 | h2 |\n|---|---|\n| a | b |\n| a | b | c |")
	require.Error(t, err)

	var rw *RowWidthError
	require.True(t, errors.As(err, &rw))
	assert.Equal(t, 1, rw.Row)
	assert.Equal(t, 2, rw.Want)
	assert.Equal(t, 3, rw.Got)
	assert.Equal(t, "line 4: row 2 has 3 cells, header has 2", err.Error())
}

func TestNew(t *testing.T) {
	tbl, err := New([]string{"a", "b"}, []string{"1", "2"}, []string{"3", "4"})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.ColumnCount())
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, tbl.Rows())

	_, err = New([]string{"a"})
	require.NoError(t, err)
}

func TestNew_EmptyHeaders(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyHeaders)

	_, err = New([]string{}, []string{"x"})
	assert.ErrorIs(t, err, ErrEmptyHeaders)

	_, err = New(nil, []string{})
	assert.ErrorIs(t, err, ErrEmptyHeaders)
}

func TestNew_RowWidthMismatch(t *testing.T) {
	_, err := New([]string{"a", "b"}, []string{"1", "2"}, []string{"1", "2", "3"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRowWidthMismatch)

	var rw *RowWidthError
	require.True(t, errors.As(err, &rw))
	assert.Equal(t, 1, rw.Row)
}

func TestTable_Immutable(t *testing.T) {
	headers := []string{"a"}
	row := []string{"1"}
	tbl, err := New(headers, row)
	require.NoError(t, err)

	headers[0] = "changed"
	row[0] = "changed"
	assert.Equal(t, []string{"a"}, tbl.Headers())
	assert.Equal(t, [][]string{{"1"}}, tbl.Rows())

	tbl.Headers()[0] = "changed"
	tbl.Rows()[0][0] = "changed"
	assert.Equal(t, []string{"a"}, tbl.Headers())
	assert.Equal(t, [][]string{{"1"}}, tbl.Rows())
}

func TestTable_Equal(t *testing.T) {
	a, _ := New([]string{"x"}, []string{"1"})
	b, _ := New([]string{"x"}, []string{"1"})
	c, _ := New([]string{"x"}, []string{"2"})
	d, _ := New([]string{"x"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}
