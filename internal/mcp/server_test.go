package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"
	"time"
)

const sampleTable = "| name | id |\n|--|--|\n| alpha | 1 |"

func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	client, err := NewInProcessClient(ctx, NewServer("test"), "test")
	if err != nil {
		t.Fatalf("NewInProcessClient() error: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestServer_ListTools(t *testing.T) {
	client := newTestClient(t)

	tools, err := client.ListTools(context.Background())
	if err != nil {
		t.Fatalf("ListTools() error: %v", err)
	}

	var names []string
	for _, tool := range tools {
		names = append(names, tool.Name)
		if _, ok := tool.InputSchema.Properties[tableArg]; !ok {
			t.Errorf("tool %s missing %q parameter", tool.Name, tableArg)
		}
	}
	sort.Strings(names)
	want := []string{ToolFormatTable, ToolParseTable, ToolTableWidths}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("tools = %v, want %v", names, want)
	}
}

func TestServer_FormatTable(t *testing.T) {
	client := newTestClient(t)

	got, err := client.CallTool(context.Background(), ToolFormatTable, map[string]interface{}{
		"table": sampleTable,
	})
	if err != nil {
		t.Fatalf("CallTool() error: %v", err)
	}
	want := "| name  | id |\n|-------|----|\n| alpha | 1  |\n"
	if got != want {
		t.Errorf("format_table = %q, want %q", got, want)
	}
}

func TestServer_ParseTable(t *testing.T) {
	client := newTestClient(t)

	got, err := client.CallTool(context.Background(), ToolParseTable, map[string]interface{}{
		"table": sampleTable,
	})
	if err != nil {
		t.Fatalf("CallTool() error: %v", err)
	}

	var doc struct {
		Headers []string   `json:"headers"`
		Rows    [][]string `json:"rows"`
		Widths  []int      `json:"widths"`
	}
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("parse_table returned invalid JSON %q: %v", got, err)
	}
	if strings.Join(doc.Headers, ",") != "name,id" {
		t.Errorf("headers = %v", doc.Headers)
	}
	if len(doc.Rows) != 1 || doc.Rows[0][0] != "alpha" {
		t.Errorf("rows = %v", doc.Rows)
	}
	if len(doc.Widths) != 2 || doc.Widths[0] != 5 || doc.Widths[1] != 2 {
		t.Errorf("widths = %v", doc.Widths)
	}
}

func TestServer_TableWidths(t *testing.T) {
	client := newTestClient(t)

	got, err := client.CallTool(context.Background(), ToolTableWidths, map[string]interface{}{
		"table": sampleTable,
	})
	if err != nil {
		t.Fatalf("CallTool() error: %v", err)
	}
	want := `[{"column":"name","width":5},{"column":"id","width":2}]`
	if got != want {
		t.Errorf("table_widths = %s, want %s", got, want)
	}
}

func TestServer_ToolErrors(t *testing.T) {
	client := newTestClient(t)

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantMsg string
	}{
		{
			name:    "missing argument",
			args:    map[string]interface{}{},
			wantMsg: "table",
		},
		{
			name:    "missing leading pipe",
			args:    map[string]interface{}{"table": "a | b |"},
			wantMsg: "line 1",
		},
		{
			name:    "row width mismatch",
			args:    map[string]interface{}{"table": "| a | b |\n|-|-|\n| 1 |"},
			wantMsg: "line 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CallTool(context.Background(), ToolFormatTable, tt.args)
			var toolErr *ToolError
			if !errors.As(err, &toolErr) {
				t.Fatalf("expected *ToolError, got %T: %v", err, err)
			}
			if toolErr.ToolName != ToolFormatTable {
				t.Errorf("ToolName = %q", toolErr.ToolName)
			}
			if !strings.Contains(toolErr.Message, tt.wantMsg) {
				t.Errorf("message %q does not contain %q", toolErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in, inWriter := io.Pipe()
	defer func() { _ = inWriter.Close() }()

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, NewServer("test"), in, io.Discard)
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
