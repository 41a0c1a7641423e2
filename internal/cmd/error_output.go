package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	ctxerrors "github.com/salmonumbrella/tablefmt/internal/errors"
	"github.com/salmonumbrella/tablefmt/internal/output"
	"github.com/salmonumbrella/tablefmt/internal/table"
)

var errorFormats = []string{"auto", "text", "json", "yaml"}

func validateErrorFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto", "text", "json", "yaml":
		return nil
	default:
		return ctxerrors.NewUserError(
			fmt.Sprintf("invalid --error-format %q", format),
			"Use one of: auto, text, json, yaml",
		)
	}
}

// effectiveErrorFormat resolves "auto" from the output format so scripts
// reading json or yaml get errors they can parse.
func effectiveErrorFormat(ctx context.Context) string {
	format := strings.ToLower(strings.TrimSpace(ErrorFormatFromContext(ctx)))
	if format == "" || format == "auto" {
		switch output.FormatFromContext(ctx) {
		case output.FormatJSON, output.FormatNDJSON:
			return "json"
		case output.FormatYAML:
			return "yaml"
		default:
			return "text"
		}
	}
	return format
}

func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	switch effectiveErrorFormat(ctx) {
	case "json":
		enc := json.NewEncoder(stderrFromContext(ctx))
		enc.SetEscapeHTML(false)
		_ = enc.Encode(buildErrorEnvelope(err))
		return
	case "yaml":
		enc := yaml.NewEncoder(stderrFromContext(ctx))
		enc.SetIndent(2)
		_ = enc.Encode(buildErrorEnvelope(err))
		_ = enc.Close()
		return
	}

	_, _ = fmt.Fprintf(stderrFromContext(ctx), "tfmt: %v\n", err)
	if suggestion := ctxerrors.UserSuggestion(err); suggestion != "" {
		_, _ = fmt.Fprintf(stderrFromContext(ctx), "Hint: %s\n", suggestion)
	}
}

func errorCategory(err error) string {
	switch {
	case ctxerrors.IsUnformattedError(err):
		return "check"
	case ctxerrors.IsInputError(err), ctxerrors.IsEncodingError(err):
		return "input"
	case isTableError(err):
		return "parse"
	case ctxerrors.IsUserError(err), ctxerrors.IsValidationError(err):
		return "user"
	default:
		return "system"
	}
}

func buildErrorEnvelope(err error) map[string]interface{} {
	errMap := map[string]interface{}{
		"message":  err.Error(),
		"category": errorCategory(err),
	}

	if suggestion := ctxerrors.UserSuggestion(err); suggestion != "" {
		errMap["suggestion"] = suggestion
	}

	var sourceErr *ctxerrors.SourceError
	if errors.As(err, &sourceErr) {
		errMap["source"] = sourceErr.Name
	}

	var parseErr *table.ParseError
	if errors.As(err, &parseErr) {
		errMap["type"] = "parse"
		errMap["line"] = parseErr.Line
	}

	var rowErr *table.RowWidthError
	if errors.As(err, &rowErr) {
		errMap["type"] = "row_width"
		errMap["row"] = rowErr.Row + 1
		errMap["want"] = rowErr.Want
		errMap["got"] = rowErr.Got
	}

	if errors.Is(err, table.ErrEmptyInput) {
		errMap["type"] = "empty_input"
	}

	var inputErr *ctxerrors.InputError
	if errors.As(err, &inputErr) {
		errMap["type"] = "input"
		errMap["path"] = inputErr.Path
	}

	var encErr *ctxerrors.EncodingError
	if errors.As(err, &encErr) {
		errMap["type"] = "encoding"
		errMap["path"] = encErr.Path
		errMap["offset"] = encErr.Offset
	}

	var unformatted *ctxerrors.UnformattedError
	if errors.As(err, &unformatted) {
		errMap["type"] = "unformatted"
		errMap["source"] = unformatted.Name
	}

	var validationErr *ctxerrors.ValidationError
	if errors.As(err, &validationErr) {
		errMap["type"] = "validation"
		errMap["field"] = validationErr.Field
	}

	return map[string]interface{}{"error": errMap}
}
