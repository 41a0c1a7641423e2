package cmd

import (
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/tablefmt/internal/iocontext"
	"github.com/salmonumbrella/tablefmt/internal/mcp"
	"github.com/salmonumbrella/tablefmt/internal/table"
)

func newMCPCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve table tools over the MCP protocol",
		Long: `Run a Model Context Protocol server on stdin/stdout exposing:

  format_table   re-render a table with aligned columns
  parse_table    headers, rows and widths as JSON
  table_widths   width of each column as JSON

Register it with an MCP client as the command "tfmt mcp".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return mcp.Serve(ctx, mcp.NewServer(app.Version), iocontext.Stdin(ctx), stdoutFromContext(ctx))
		},
	}

	cmd.AddCommand(newMCPToolsCmd(app))
	return cmd
}

// toolList is the output of `mcp tools`.
type toolList []toolInfo

type toolInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

func (l toolList) Table() (*table.Table, error) {
	rows := make([][]string, len(l))
	for i, t := range l {
		rows[i] = []string{t.Name, t.Description}
	}
	return table.New([]string{"name", "description"}, rows...)
}

func newMCPToolsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools the MCP server advertises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := mcp.NewInProcessClient(ctx, mcp.NewServer(app.Version), app.Version)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			tools, err := client.ListTools(ctx)
			if err != nil {
				return err
			}

			list := make(toolList, len(tools))
			for i, t := range tools {
				list[i] = toolInfo{Name: t.Name, Description: t.Description}
			}
			return printerForContext(ctx).Print(ctx, list)
		},
	}
}
