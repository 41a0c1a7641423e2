package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	clierrors "github.com/salmonumbrella/tablefmt/internal/errors"
	"github.com/salmonumbrella/tablefmt/internal/table"
)

// Format represents the output format type.
type Format string

const (
	// FormatMarkdown is the aligned pipe table (default).
	FormatMarkdown Format = "markdown"
	// FormatJSON is pretty-printed JSON format.
	FormatJSON Format = "json"
	// FormatNDJSON is newline-delimited JSON, one object per row.
	FormatNDJSON Format = "ndjson"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
	// FormatGrid is a boxed table for terminals.
	FormatGrid Format = "grid"
)

// FormatNames lists the accepted --output values, aliases included.
var FormatNames = []string{"markdown", "md", "text", "json", "ndjson", "jsonl", "yaml", "grid"}

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatMarkdown.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatMarkdown, "md", "text", "":
		return FormatMarkdown, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatNDJSON, "jsonl":
		return FormatNDJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatGrid:
		return FormatGrid, nil
	default:
		return "", errors.New("invalid --output format (expected markdown|json|ndjson|jsonl|yaml|grid)")
	}
}

// IsStructured reports whether f is a machine-readable format.
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatNDJSON || f == FormatYAML
}

// Tabular is implemented by results that have a table view in the
// markdown and grid formats.
type Tabular interface {
	Table() (*table.Table, error)
}

// Printer handles output formatting across different formats.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:      w,
		format: format,
	}
}

// Print writes data in the configured format. A *table.Table or a Tabular
// value is required for markdown and grid output.
func (p *Printer) Print(ctx context.Context, data interface{}) error {
	if data == nil {
		return nil
	}

	if !p.format.IsStructured() {
		if QueryFromContext(ctx) != "" || JSONPathFromContext(ctx) != "" {
			return clierrors.NewUserError(
				fmt.Sprintf("--query/--jsonpath are not supported with %s output", p.format),
				"Use --output json|ndjson|yaml instead",
			)
		}
		tbl, err := tableOf(data)
		if err != nil {
			return err
		}
		if p.format == FormatGrid {
			return p.printGrid(tbl)
		}
		_, err = tbl.WriteTo(p.w)
		return err
	}

	if tbl, ok := data.(*table.Table); ok {
		if p.format == FormatNDJSON {
			data = rowObjects(tbl)
		} else {
			data = NewDocument(tbl)
		}
	}

	data, err := applyJSONPathFromContext(ctx, data)
	if err != nil {
		return err
	}

	switch p.format {
	case FormatJSON:
		return p.printJSON(ctx, data)
	case FormatNDJSON:
		return p.printNDJSON(ctx, data)
	case FormatYAML:
		return p.printYAML(ctx, data)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

func tableOf(data interface{}) (*table.Table, error) {
	switch v := data.(type) {
	case *table.Table:
		return v, nil
	case Tabular:
		return v.Table()
	default:
		return nil, fmt.Errorf("cannot render %T as a table", data)
	}
}

// printYAML outputs data as YAML, after the --query filter when present.
func (p *Printer) printYAML(ctx context.Context, data interface{}) error {
	if query := QueryFromContext(ctx); query != "" {
		results, err := runQueryRaw(query, data)
		if err != nil {
			return err
		}
		if len(results) == 1 {
			data = results[0]
		} else {
			data = results
		}
	}

	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

// printJSON outputs data as JSON, pretty unless --compact-json is set.
func (p *Printer) printJSON(ctx context.Context, data interface{}) error {
	compact := CompactJSONFromContext(ctx)
	if query := QueryFromContext(ctx); query != "" {
		return p.runQuery(query, data, !compact)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(data)
}

// printNDJSON outputs one compact JSON value per line. Slices are
// flattened so each element gets its own line.
func (p *Printer) printNDJSON(ctx context.Context, data interface{}) error {
	if query := QueryFromContext(ctx); query != "" {
		return p.runQuery(query, data, false)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)

	if objs, ok := data.([]RowObject); ok {
		for _, obj := range objs {
			if err := enc.Encode(obj); err != nil {
				return err
			}
		}
		return nil
	}
	normalized, err := normalizeToInterface(data)
	if err != nil {
		return err
	}
	if items, ok := normalized.([]interface{}); ok {
		for _, item := range items {
			if err := enc.Encode(item); err != nil {
				return err
			}
		}
		return nil
	}
	return enc.Encode(normalized)
}
