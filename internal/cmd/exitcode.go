package cmd

import (
	"context"
	"errors"

	clierrors "github.com/salmonumbrella/tablefmt/internal/errors"
	"github.com/salmonumbrella/tablefmt/internal/table"
)

const (
	ExitOK          = 0
	ExitSystem      = 1
	ExitUser        = 2
	ExitParse       = 3
	ExitInput       = 4
	ExitUnformatted = 5
	ExitCanceled    = 130
)

// ExitCode maps a command error to a stable process exit code for automation.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if clierrors.IsUnformattedError(err) {
		return ExitUnformatted
	}
	if clierrors.IsInputError(err) || clierrors.IsEncodingError(err) {
		return ExitInput
	}
	if isTableError(err) {
		return ExitParse
	}
	if clierrors.IsValidationError(err) || clierrors.IsUserError(err) {
		return ExitUser
	}

	return ExitSystem
}

// isTableError reports whether err is a structural failure from the parser.
func isTableError(err error) bool {
	var pe *table.ParseError
	if errors.As(err, &pe) {
		return true
	}
	var rw *table.RowWidthError
	if errors.As(err, &rw) {
		return true
	}
	return errors.Is(err, table.ErrEmptyInput) || errors.Is(err, table.ErrEmptyHeaders)
}
