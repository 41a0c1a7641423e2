// Package mcp exposes the table formatter as Model Context Protocol tools
// and provides a small client for talking to that server in-process.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/salmonumbrella/tablefmt/internal/output"
	"github.com/salmonumbrella/tablefmt/internal/table"
)

const (
	serverName = "tablefmt"

	// Tool names.
	ToolFormatTable = "format_table"
	ToolParseTable  = "parse_table"
	ToolTableWidths = "table_widths"

	tableArg = "table"
)

// NewServer builds an MCP server with the table tools registered.
func NewServer(version string) *server.MCPServer {
	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	tableParam := mcp.WithString(tableArg,
		mcp.Required(),
		mcp.Description("Pipe-delimited table: header row, separator row, then data rows"),
	)

	s.AddTool(mcp.NewTool(ToolFormatTable,
		mcp.WithDescription("Re-render a pipe-delimited table with aligned columns"),
		tableParam,
	), handleFormatTable)

	s.AddTool(mcp.NewTool(ToolParseTable,
		mcp.WithDescription("Parse a pipe-delimited table into headers, rows and column widths (JSON)"),
		tableParam,
	), handleParseTable)

	s.AddTool(mcp.NewTool(ToolTableWidths,
		mcp.WithDescription("Report the width of each column of a pipe-delimited table (JSON)"),
		tableParam,
	), handleTableWidths)

	return s
}

// Serve runs the server over stdio until ctx is cancelled or in is closed.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))

	slog.Debug("mcp server listening on stdio")
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func handleFormatTable(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, result := parseArg(req)
	if result != nil {
		return result, nil
	}
	return mcp.NewToolResultText(t.Format()), nil
}

func handleParseTable(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, result := parseArg(req)
	if result != nil {
		return result, nil
	}
	return jsonResult(output.NewDocument(t))
}

func handleTableWidths(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, result := parseArg(req)
	if result != nil {
		return result, nil
	}
	return jsonResult(output.ColumnWidths(t))
}

// parseArg returns the parsed table, or a tool error result when the
// argument is missing or the table is malformed.
func parseArg(req mcp.CallToolRequest) (*table.Table, *mcp.CallToolResult) {
	raw, err := req.RequireString(tableArg)
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	t, err := table.Parse(raw)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("invalid table: %v", err))
	}
	return t, nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
