// Package table parses pipe-delimited text tables and renders them back
// with every column padded to a common width.
//
// The accepted grammar is:
//
//	| header_1 | header_2 | ... |
//	| -------- | -------- | ... |
//	| cell     | cell     | ... |
//
// The first line defines the columns. The second line is treated as the
// separator and is never inspected. Every following line is a data row and
// must have exactly as many cells as the header. Cells are trimmed of
// surrounding whitespace; pipes inside a cell cannot be escaped.
//
// Widths are measured in bytes, not rendered terminal columns, so
// multi-byte characters may not line up visually.
package table
