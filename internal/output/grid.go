package output

import (
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/salmonumbrella/tablefmt/internal/table"
)

// printGrid renders t as a boxed table. Cells are shown as parsed; the
// grid view is for reading, not for round-tripping.
func (p *Printer) printGrid(t *table.Table) error {
	cnf := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
	}

	grid := tablewriter.NewTable(p.w,
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithConfig(cnf),
	)

	headers := t.Headers()
	headerAny := make([]any, len(headers))
	for i, h := range headers {
		headerAny[i] = h
	}
	grid.Header(headerAny...)

	if err := grid.Bulk(t.Rows()); err != nil {
		return err
	}
	return grid.Render()
}
