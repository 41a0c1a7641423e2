package cmd

import (
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/tablefmt/internal/output"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the parsed table as structured data",
		Long: `Parse a table and print its headers, rows and column widths.

Defaults to JSON; use --output yaml or ndjson (one object per row) for
other shapes, and --query or --jsonpath to extract values.

Example:
  tfmt parse table.md
  tfmt parse -o ndjson table.md
  cat table.md | tfmt parse --query '.rows | length'`,
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{annotationDefaultOutput: string(output.FormatJSON)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, tbl, err := readTable(ctx, args)
			if err != nil {
				return err
			}
			return printerForContext(ctx).Print(ctx, tbl)
		},
	}
}
