package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/tablefmt/internal/config"
	clierrors "github.com/salmonumbrella/tablefmt/internal/errors"
	"github.com/salmonumbrella/tablefmt/internal/logging"
	"github.com/salmonumbrella/tablefmt/internal/output"
	"github.com/salmonumbrella/tablefmt/internal/ui"
)

// EnvOutput overrides the configured output format.
const EnvOutput = "TFMT_OUTPUT"

// annotationDefaultOutput names a command's own default output format,
// used when neither flag, env nor config chooses one.
const annotationDefaultOutput = "tfmt/default-output"

type globalFlagInput struct {
	outputFlag   string
	queryFlag    string
	jsonPathFlag string
	compactJSON  bool
	quietFlag    bool
	debugMode    bool
	logFormat    string
	colorFlag    string
	errorFormat  string
}

type globalOptions struct {
	format      output.Format
	query       string
	jsonPath    string
	compactJSON bool
	quiet       bool
	debug       bool
	logFormat   logging.Format
	color       ui.ColorMode
	errorFormat string
}

var (
	colorChoices     = []string{"auto", "always", "never"}
	logFormatChoices = []string{"text", "json"}
)

// parseGlobalOptions resolves each global setting. Precedence for the
// output format is flag, then TFMT_OUTPUT, then config, then the
// command's own default. Other settings go flag, then config.
func parseGlobalOptions(cmd *cobra.Command, cfg *config.Config, flags globalFlagInput) (globalOptions, error) {
	opts := globalOptions{
		query:       strings.TrimSpace(flags.queryFlag),
		jsonPath:    strings.TrimSpace(flags.jsonPathFlag),
		compactJSON: flags.compactJSON,
		quiet:       flags.quietFlag,
		debug:       flags.debugMode,
	}

	formatStr := flags.outputFlag
	outputSet := commandFlagChanged(cmd, "output") || commandFlagChanged(cmd, "out")
	switch {
	case outputSet:
	case strings.TrimSpace(os.Getenv(EnvOutput)) != "":
		formatStr = os.Getenv(EnvOutput)
	case cfg.Output != "":
		formatStr = cfg.Output
	default:
		formatStr = cmd.Annotations[annotationDefaultOutput]
	}
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return globalOptions{}, clierrors.InvalidChoiceError("--output", formatStr, output.FormatNames)
	}
	opts.format = format

	colorStr := flags.colorFlag
	if !commandFlagChanged(cmd, "color") && cfg.Color != "" {
		colorStr = cfg.Color
	}
	color, ok := ui.ParseColorMode(colorStr)
	if !ok {
		return globalOptions{}, clierrors.InvalidChoiceError("--color", colorStr, colorChoices)
	}
	opts.color = color

	logStr := flags.logFormat
	if !commandFlagChanged(cmd, "log-format") && cfg.LogFormat != "" {
		logStr = cfg.LogFormat
	}
	logFormat, ok := logging.ParseFormat(logStr)
	if !ok {
		return globalOptions{}, clierrors.InvalidChoiceError("--log-format", logStr, logFormatChoices)
	}
	opts.logFormat = logFormat

	opts.errorFormat = flags.errorFormat
	if !commandFlagChanged(cmd, "error-format") && cfg.ErrorFormat != "" {
		opts.errorFormat = cfg.ErrorFormat
	}

	return opts, nil
}

func validateGlobalOptions(opts *globalOptions) error {
	if opts.query != "" && opts.jsonPath != "" {
		return errOnlyOne("--query", "--jsonpath")
	}
	if (opts.query != "" || opts.jsonPath != "") && !opts.format.IsStructured() {
		return clierrors.NewUserError(
			fmt.Sprintf("--query/--jsonpath need structured output, not %s", opts.format),
			"Add --output json (or ndjson, yaml)",
		)
	}
	if opts.query != "" {
		if err := output.ValidateQuery(opts.query); err != nil {
			return &clierrors.UserError{Message: err.Error(), Suggestion: "Example: --query '.rows[] | .[0]'"}
		}
	}
	return validateErrorFormat(opts.errorFormat)
}

func buildRootContext(ctx context.Context, app *App, cfg *config.Config, opts globalOptions) context.Context {
	ctx = output.WithFormat(ctx, opts.format)
	ctx = output.WithQuery(ctx, opts.query)
	ctx = output.WithJSONPath(ctx, opts.jsonPath)
	ctx = output.WithCompactJSON(ctx, opts.compactJSON)
	ctx = output.WithQuiet(ctx, opts.quiet)
	ctx = WithConfig(ctx, cfg)
	ctx = WithErrorFormat(ctx, opts.errorFormat)
	ctx = ui.WithUI(ctx, ui.New(opts.color, app.Stderr))
	return ctx
}

func errOnlyOne(left, right string) error {
	return clierrors.NewUserError(fmt.Sprintf("use only one of %s or %s", left, right), "")
}
