package cmd

import (
	"context"
	"io"

	"github.com/salmonumbrella/tablefmt/internal/iocontext"
	"github.com/salmonumbrella/tablefmt/internal/output"
)

func stdoutFromContext(ctx context.Context) io.Writer {
	return iocontext.Stdout(ctx)
}

func stderrFromContext(ctx context.Context) io.Writer {
	return iocontext.Stderr(ctx)
}

func printerForContext(ctx context.Context) *output.Printer {
	return output.NewPrinter(stdoutFromContext(ctx), output.FormatFromContext(ctx))
}
