package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/natefinch/atomic"

	clierrors "github.com/salmonumbrella/tablefmt/internal/errors"
	"github.com/salmonumbrella/tablefmt/internal/input"
	"github.com/salmonumbrella/tablefmt/internal/iocontext"
	"github.com/salmonumbrella/tablefmt/internal/output"
	"github.com/salmonumbrella/tablefmt/internal/table"
	"github.com/salmonumbrella/tablefmt/internal/ui"
)

type formatOptions struct {
	check bool
	write bool
}

// runFormat is the root command: read, parse, then print, check or
// rewrite the canonical rendering.
func runFormat(ctx context.Context, args []string, opts formatOptions) error {
	if opts.check && opts.write {
		return errOnlyOne("--check", "--write")
	}
	if opts.write {
		if len(args) != 1 || args[0] == input.StdinPath {
			return clierrors.NewUserError("--write needs exactly one file argument", "tfmt -w table.md")
		}
		if f := output.FormatFromContext(ctx); f != output.FormatMarkdown {
			return clierrors.NewUserError(
				fmt.Sprintf("--write only writes markdown, not %s", f),
				fmt.Sprintf("Drop --output, or redirect instead: tfmt -o %s %s > out", f, args[0]),
			)
		}
	}

	src, tbl, err := readTable(ctx, args)
	if err != nil {
		return err
	}
	canonical := tbl.Format()

	switch {
	case opts.check:
		if !isCanonical(src, canonical) {
			return &clierrors.UnformattedError{Name: src.Name()}
		}
		slog.Debug("table is formatted", "source", src.Name())
		return nil
	case opts.write:
		return writeCanonical(ctx, src, canonical)
	}

	return printerForContext(ctx).Print(ctx, tbl)
}

// readTable reads the input named by args and parses it. Parse failures
// carry the input's name.
func readTable(ctx context.Context, args []string) (*input.Source, *table.Table, error) {
	if len(args) > 1 {
		return nil, nil, clierrors.ArgCountError(len(args))
	}
	if (len(args) == 0 || args[0] == input.StdinPath) &&
		!output.QuietFromContext(ctx) && input.IsInteractive(iocontext.Stdin(ctx)) {
		ui.FromContext(ctx).Hint("reading table from stdin; finish with Ctrl-D")
	}

	src, err := input.Read(ctx, args)
	if err != nil {
		return nil, nil, err
	}

	tbl, err := table.Parse(src.Text)
	if err != nil {
		return nil, nil, clierrors.WrapSource(src.Name(), err)
	}
	slog.Debug("parsed table", "source", src.Name(), "columns", tbl.ColumnCount(), "rows", len(tbl.Rows()))
	return src, tbl, nil
}

// isCanonical reports whether the input bytes already are the rendering.
// A byte order mark or UTF-16 counts as unformatted.
func isCanonical(src *input.Source, canonical string) bool {
	return src.Encoding == input.EncodingUTF8 && src.Text == canonical
}

func writeCanonical(ctx context.Context, src *input.Source, canonical string) error {
	if isCanonical(src, canonical) {
		slog.Debug("table already formatted, not rewriting", "path", src.Path)
		return nil
	}
	if src.Encoding != input.EncodingUTF8 && !output.QuietFromContext(ctx) {
		ui.FromContext(ctx).Warning("%s was %s; rewriting as UTF-8", src.Path, src.Encoding)
	}
	if err := atomic.WriteFile(src.Path, strings.NewReader(canonical)); err != nil {
		return fmt.Errorf("failed to write %s: %w", src.Path, err)
	}
	slog.Debug("rewrote table", "path", src.Path, "bytes", len(canonical))
	return nil
}
