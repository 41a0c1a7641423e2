// Package iocontext carries the process streams through context.Context so
// commands can be exercised with in-memory readers and writers.
package iocontext

import (
	"context"
	"io"
	"os"
)

// Streams is the set of standard streams a command works with. A nil field
// means "use the process default".
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type streamsKey struct{}

// WithStreams attaches s to ctx.
func WithStreams(ctx context.Context, s Streams) context.Context {
	return context.WithValue(ctx, streamsKey{}, s)
}

// WithIO injects stdout and stderr writers, keeping any stdin already set.
func WithIO(ctx context.Context, stdout, stderr io.Writer) context.Context {
	s := FromContext(ctx)
	s.Out, s.Err = stdout, stderr
	return WithStreams(ctx, s)
}

// WithStdin injects the stdin reader, keeping any writers already set.
func WithStdin(ctx context.Context, stdin io.Reader) context.Context {
	s := FromContext(ctx)
	s.In = stdin
	return WithStreams(ctx, s)
}

// FromContext returns the streams stored in ctx; unset fields are nil.
func FromContext(ctx context.Context) Streams {
	if s, ok := ctx.Value(streamsKey{}).(Streams); ok {
		return s
	}
	return Streams{}
}

// Stdin returns the stdin reader from context, falling back to os.Stdin.
func Stdin(ctx context.Context) io.Reader {
	if r := FromContext(ctx).In; r != nil {
		return r
	}
	return os.Stdin
}

// Stdout returns the stdout writer from context, falling back to os.Stdout.
func Stdout(ctx context.Context) io.Writer {
	if w := FromContext(ctx).Out; w != nil {
		return w
	}
	return os.Stdout
}

// Stderr returns the stderr writer from context, falling back to os.Stderr.
func Stderr(ctx context.Context) io.Writer {
	if w := FromContext(ctx).Err; w != nil {
		return w
	}
	return os.Stderr
}
