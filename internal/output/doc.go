// Package output renders parsed tables for the tfmt CLI.
//
// It supports output formats:
//   - markdown: the aligned pipe table (default)
//   - json: pretty-printed document with headers, rows and widths
//   - ndjson: one JSON object per data row, keyed by header
//   - yaml: the same document as json
//   - grid: a boxed view for reading in a terminal
//
// # Context-Based Dependency Injection
//
// The format and the --query/--jsonpath transforms are set once in the root
// command's PersistentPreRunE and read back by subcommands:
//
//	ctx := output.WithFormat(cmd.Context(), format)
//	ctx = output.WithQuery(ctx, query)
//	cmd.SetContext(ctx)
//
// In commands:
//
//	printer := output.NewPrinter(w, output.FormatFromContext(ctx))
//	return printer.Print(ctx, tbl)
//
// # Data Type Handling
//
// A *table.Table renders as itself in markdown and grid formats and as a
// Document in the structured formats. Any value implementing Tabular is
// rendered through its Table method in markdown and grid formats and
// marshalled directly otherwise.
package output
