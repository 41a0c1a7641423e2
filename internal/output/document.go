package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/salmonumbrella/tablefmt/internal/table"
)

// Document is the structured form of a table in json and yaml output.
type Document struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
	Widths  []int      `json:"widths" yaml:"widths"`
}

// NewDocument captures t's headers, rows and column widths.
func NewDocument(t *table.Table) Document {
	return Document{
		Headers: t.Headers(),
		Rows:    t.Rows(),
		Widths:  t.Widths(),
	}
}

// RowObject is one data row keyed by column name, in column order.
type RowObject struct {
	Keys   []string
	Values []string
}

// MarshalJSON writes the object with keys in column order.
func (r RowObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// rowObjects keys each row by header. If headers repeat, or any header is
// empty, every column is keyed positionally as col1, col2, ...
func rowObjects(t *table.Table) []RowObject {
	keys := objectKeys(t.Headers())
	rows := t.Rows()
	out := make([]RowObject, len(rows))
	for i, row := range rows {
		out[i] = RowObject{Keys: keys, Values: row}
	}
	return out
}

func objectKeys(headers []string) []string {
	seen := make(map[string]bool, len(headers))
	unique := true
	for _, h := range headers {
		if h == "" || seen[h] {
			unique = false
			break
		}
		seen[h] = true
	}
	if unique {
		return headers
	}

	keys := make([]string, len(headers))
	for i := range headers {
		keys[i] = fmt.Sprintf("col%d", i+1)
	}
	return keys
}

// ColumnWidth is one column's name and rendered width.
type ColumnWidth struct {
	Column string `json:"column" yaml:"column"`
	Width  int    `json:"width" yaml:"width"`
}

// WidthReport lists column widths in column order.
type WidthReport []ColumnWidth

// ColumnWidths pairs each header with its computed width.
func ColumnWidths(t *table.Table) WidthReport {
	headers := t.Headers()
	widths := t.Widths()
	out := make(WidthReport, len(headers))
	for i, h := range headers {
		out[i] = ColumnWidth{Column: h, Width: widths[i]}
	}
	return out
}

// Table renders the report as a two-column table.
func (r WidthReport) Table() (*table.Table, error) {
	rows := make([][]string, len(r))
	for i, cw := range r {
		rows[i] = []string{cw.Column, strconv.Itoa(cw.Width)}
	}
	return table.New([]string{"column", "width"}, rows...)
}
