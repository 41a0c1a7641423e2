package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/tablefmt/internal/iocontext"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Version   string
	Commit    string
	BuildTime string
}

// NewApp constructs an App with default settings.
func NewApp() *App {
	return &App{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Version:   "dev",
		Commit:    "unknown",
		BuildTime: "unknown",
	}
}

// Execute runs the CLI with the provided args.
func (a *App) Execute(ctx context.Context, args []string) error {
	ctx = iocontext.WithStreams(ctx, iocontext.Streams{In: a.Stdin, Out: a.Stdout, Err: a.Stderr})

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	executed, err := root.ExecuteContextC(ctx)
	if err != nil {
		// The executed command carries the context built in pre-run,
		// including the requested error format.
		errCtx := ctx
		if executed != nil && executed.Context() != nil {
			errCtx = executed.Context()
		}
		printCommandError(errCtx, err)
		return err
	}
	return nil
}

// RootCommand exposes the root Cobra command for embedding/tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}
