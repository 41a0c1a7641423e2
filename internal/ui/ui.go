// Package ui writes coloured diagnostics for tfmt to stderr.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto colors output only when the writer is a capable terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output.
	ColorAlways
	// ColorNever disables colored output.
	ColorNever
)

// ParseColorMode maps "auto", "always" and "never" to a ColorMode.
func ParseColorMode(s string) (ColorMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, true
	case "always":
		return ColorAlways, true
	case "never":
		return ColorNever, true
	default:
		return ColorAuto, false
	}
}

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

type contextKey struct{}

// UI prints status messages. Data goes to stdout; UI never touches it.
type UI struct {
	out   *termenv.Output
	color ColorMode
}

// New creates a UI writing to w (os.Stderr when nil).
// NO_COLOR in the environment forces ColorNever.
func New(mode ColorMode, w io.Writer) *UI {
	if w == nil {
		w = os.Stderr
	}
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	var opts []termenv.OutputOption
	switch mode {
	case ColorNever:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	case ColorAlways:
		opts = append(opts, termenv.WithProfile(termenv.ANSI), termenv.WithTTY(true))
	}

	return &UI{
		out:   termenv.NewOutput(w, opts...),
		color: mode,
	}
}

// WithUI returns a new context with the UI attached.
func WithUI(ctx context.Context, ui *UI) context.Context {
	return context.WithValue(ctx, contextKey{}, ui)
}

// FromContext returns the UI attached to ctx, or an auto-color UI on stderr.
func FromContext(ctx context.Context) *UI {
	if ui, ok := ctx.Value(contextKey{}).(*UI); ok {
		return ui
	}
	return New(ColorAuto, nil)
}

func (u *UI) println(prefix string, color termenv.Color, format string, args ...any) {
	msg := prefix + fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String(msg).Foreground(color))
}

// Warning prints a warning message in yellow.
func (u *UI) Warning(format string, args ...any) {
	u.println("warning: ", termenv.ANSIYellow, format, args...)
}

// Error prints an error message in red.
func (u *UI) Error(format string, args ...any) {
	u.println("error: ", termenv.ANSIRed, format, args...)
}

// Info prints an informational message in blue.
func (u *UI) Info(format string, args ...any) {
	u.println("", termenv.ANSIBlue, format, args...)
}

// Hint prints a suggestion in a faint style.
func (u *UI) Hint(format string, args ...any) {
	msg := "Hint: " + fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String(msg).Faint())
}

// Writer returns the underlying writer.
func (u *UI) Writer() io.Writer {
	return u.out
}
