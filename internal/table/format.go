package table

import (
	"io"
	"strings"
)

const (
	cellFill      = ' '
	separatorFill = '-'
)

// Widths returns, for each column, the length in bytes of its longest
// cell, counting the header.
func (t *Table) Widths() []int {
	widths := make([]int, t.columnCount)
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// FormatRow renders cells as a single pipe-delimited line. Each cell is
// surrounded by fill and padded with fill up to widths[i]+2 characters.
// widths[i] must not be smaller than len(cells[i]).
func FormatRow(cells []string, widths []int, fill byte) string {
	var b strings.Builder
	writeRow(&b, cells, widths, fill)
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int, fill byte) {
	b.WriteByte('|')
	for i, cell := range cells {
		b.WriteByte(fill)
		b.WriteString(cell)
		for n := widths[i] - len(cell) + 1; n > 0; n-- {
			b.WriteByte(fill)
		}
		b.WriteByte('|')
	}
}

// Format renders the table with aligned columns: the header row, a dashed
// separator row, then the data rows. Every line ends with a newline.
func (t *Table) Format() string {
	widths := t.Widths()

	var b strings.Builder
	lineLen := 1
	for _, w := range widths {
		lineLen += w + 3
	}
	b.Grow((lineLen + 1) * (len(t.rows) + 2))

	writeRow(&b, t.headers, widths, cellFill)
	b.WriteByte('\n')
	writeRow(&b, make([]string, t.columnCount), widths, separatorFill)
	b.WriteByte('\n')
	for _, row := range t.rows {
		writeRow(&b, row, widths, cellFill)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the output of Format to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Format())
	return int64(n), err
}

// String is Format.
func (t *Table) String() string {
	return t.Format()
}
