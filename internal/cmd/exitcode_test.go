package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	clierrors "github.com/salmonumbrella/tablefmt/internal/errors"
	"github.com/salmonumbrella/tablefmt/internal/table"
)

func TestExitCode(t *testing.T) {
	parseErr := &table.ParseError{Line: 1, Err: table.ErrMissingLeadingBoundary}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"canceled", context.Canceled, ExitCanceled},
		{"wrapped_canceled", fmt.Errorf("read: %w", context.Canceled), ExitCanceled},
		{"user", clierrors.NewUserError("bad", "hint"), ExitUser},
		{"arg_count", clierrors.ArgCountError(2), ExitUser},
		{"validation", &clierrors.ValidationError{Field: "x", Message: "bad"}, ExitUser},
		{"parse", parseErr, ExitParse},
		{"parse_with_source", clierrors.WrapSource("t.md", parseErr), ExitParse},
		{"row_width", &table.RowWidthError{Row: 0, Want: 2, Got: 1}, ExitParse},
		{"empty_input", table.ErrEmptyInput, ExitParse},
		{"empty_headers", table.ErrEmptyHeaders, ExitParse},
		{"input", &clierrors.InputError{Path: "t.md", Err: fs.ErrNotExist}, ExitInput},
		{"encoding", &clierrors.EncodingError{Path: "-", Offset: 3}, ExitInput},
		{"unformatted", &clierrors.UnformattedError{Name: "t.md"}, ExitUnformatted},
		{"other", errors.New("boom"), ExitSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
