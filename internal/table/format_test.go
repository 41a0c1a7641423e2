package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidths(t *testing.T) {
	tbl, err := New([]string{"id", "name"}, []string{"1", "alpha"}, []string{"100", ""})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, tbl.Widths())
}

func TestWidths_CountsBytes(t *testing.T) {
	tbl, err := New([]string{"é"})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, tbl.Widths())
}

func TestFormatRow(t *testing.T) {
	assert.Equal(t, "| a   | bb |", FormatRow([]string{"a", "bb"}, []int{3, 2}, ' '))
	assert.Equal(t, "|-----|----|", FormatRow([]string{"", ""}, []int{3, 2}, '-'))
	assert.Equal(t, "|", FormatRow(nil, nil, ' '))
}

func TestFormat(t *testing.T) {
	tbl, err := Parse("| header1 | h2 |\n|-|-|\n| cell 1 | a longer cell |\n| x | |")
	require.NoError(t, err)

	want := strings.Join([]string{
		"| header1 | h2            |",
		"|---------|---------------|",
		"| cell 1  | a longer cell |",
		"| x       |               |",
		"",
	}, "\n")
	assert.Equal(t, want, tbl.Format())
}

func TestFormat_HeaderOnly(t *testing.T) {
	tbl, err := Parse("| h |")
	require.NoError(t, err)
	assert.Equal(t, "| h |\n|---|\n", tbl.Format())
}

func TestFormat_EmptyHeaderCell(t *testing.T) {
	tbl, err := New([]string{""})
	require.NoError(t, err)
	assert.Equal(t, "|  |\n|--|\n", tbl.Format())
}

func TestFormat_ColumnWidthInvariant(t *testing.T) {
	inputs := []string{
		"| h |",
		"| a | b |\n|---|---|\n| longer value | x |\n|  | yy |",
		"|one|two|three|\n|-|-|-|\n|1|22|333|\n|4444|5|66|",
		"| é | b |\n|-|-|\n| ab | ñandú |",
	}

	for _, raw := range inputs {
		tbl, err := Parse(raw)
		require.NoError(t, err)
		widths := tbl.Widths()

		lines := strings.Split(strings.TrimSuffix(tbl.Format(), "\n"), "\n")
		require.Len(t, lines, len(tbl.Rows())+2)
		for _, line := range lines {
			require.True(t, strings.HasPrefix(line, "|"))
			require.True(t, strings.HasSuffix(line, "|"))
			segments := strings.Split(line[1:len(line)-1], "|")
			require.Len(t, segments, tbl.ColumnCount())
			for i, seg := range segments {
				assert.Equal(t, widths[i]+2, len(seg), "column %d of %q", i, line)
			}
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	inputs := []string{
		"| h |",
		"| h1 | h2 |\n|----|----|",
		"  | h1 | h2 |  \n |----|----| \n | a   | b|\n",
		"| name | description |\n|---|---|\n| tfmt | formats tables |\n| | empty first cell |",
	}

	for _, raw := range inputs {
		first, err := Parse(raw)
		require.NoError(t, err)

		formatted := first.Format()
		second, err := Parse(formatted)
		require.NoError(t, err)
		assert.True(t, first.Equal(second), "round trip changed %q", raw)
		assert.Equal(t, formatted, second.Format(), "formatting is not idempotent for %q", raw)
	}
}

func TestWriteTo(t *testing.T) {
	tbl, err := New([]string{"a"}, []string{"bcd"})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := tbl.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, tbl.Format(), buf.String())
	assert.Equal(t, tbl.Format(), tbl.String())
}
