package cmd

import (
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/tablefmt/internal/output"
)

func newWidthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "widths [file]",
		Short: "Print the width of each column",
		Long: `Print each column's header and its width: the byte length of the
longest cell in that column, header included.

Example:
  tfmt widths table.md
  tfmt widths -o json table.md`,
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{annotationDefaultOutput: string(output.FormatGrid)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, tbl, err := readTable(ctx, args)
			if err != nil {
				return err
			}
			return printerForContext(ctx).Print(ctx, output.ColumnWidths(tbl))
		},
	}
}
