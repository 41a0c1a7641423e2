// Package input loads the raw table text tfmt operates on, from standard
// input or from a single file.
package input

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	clierrors "github.com/salmonumbrella/tablefmt/internal/errors"
	"github.com/salmonumbrella/tablefmt/internal/iocontext"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// Encodings reported in Source.Encoding.
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF8BOM = "utf-8-bom"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
)

// Source is one complete blob of table text.
type Source struct {
	// Path is the file the text came from, or StdinPath.
	Path string
	// Text is the decoded UTF-8 content.
	Text string
	// Encoding is the encoding the bytes were decoded from.
	Encoding string
}

// Name returns a label for diagnostics.
func (s *Source) Name() string {
	if s.Path == StdinPath {
		return "<stdin>"
	}
	return s.Path
}

// IsStdin reports whether the text came from standard input.
func (s *Source) IsStdin() bool {
	return s.Path == StdinPath
}

// Read resolves positional arguments to a source: none reads stdin, one
// names a file ("-" is stdin too), anything else is a usage error.
func Read(ctx context.Context, args []string) (*Source, error) {
	switch len(args) {
	case 0:
		return ReadPath(ctx, StdinPath)
	case 1:
		return ReadPath(ctx, args[0])
	default:
		return nil, clierrors.ArgCountError(len(args))
	}
}

// ReadPath reads and decodes the file at path, or stdin when path is "-".
func ReadPath(ctx context.Context, path string) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if path == StdinPath {
		data, err = io.ReadAll(iocontext.Stdin(ctx))
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, &clierrors.InputError{Path: path, Err: err}
	}

	text, enc, err := Decode(data)
	if err != nil {
		var encErr *clierrors.EncodingError
		if errors.As(err, &encErr) {
			encErr.Path = path
		}
		return nil, err
	}

	slog.Debug("read table input", "path", path, "bytes", len(data), "encoding", enc)
	return &Source{Path: path, Text: text, Encoding: enc}, nil
}

// Decode converts raw bytes to UTF-8 text. A UTF-8 byte order mark is
// dropped and BOM-prefixed UTF-16 is transcoded; anything else must already
// be valid UTF-8. The returned error is a *errors.EncodingError.
func Decode(data []byte) (string, string, error) {
	enc := detectEncoding(data)

	decoded := data
	if enc != EncodingUTF8 {
		var err error
		decoded, _, err = transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
		if err != nil {
			return "", enc, &clierrors.EncodingError{}
		}
	}

	if off := invalidOffset(decoded); off >= 0 {
		return "", enc, &clierrors.EncodingError{Offset: off}
	}
	return string(decoded), enc, nil
}

// IsInteractive reports whether r is a terminal, meaning a read would wait
// for the user to type.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func detectEncoding(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return EncodingUTF8BOM
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return EncodingUTF16LE
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
