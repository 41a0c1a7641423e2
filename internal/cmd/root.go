package cmd

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/tablefmt/internal/config"
	"github.com/salmonumbrella/tablefmt/internal/errors"
	"github.com/salmonumbrella/tablefmt/internal/logging"
	"github.com/salmonumbrella/tablefmt/internal/output"
)

//go:embed help.txt
var rootHelpText string

func newRootCmd(app *App) *cobra.Command {
	// Global flags
	var (
		outputFlag   string
		queryFlag    string
		jsonPathFlag string
		compactJSON  bool
		quietFlag    bool
		debugMode    bool
		logFormat    string
		colorFlag    string
		errorFormat  string
	)

	// Root-only flags
	var (
		checkFlag bool
		writeFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "tfmt [file]",
		Short: "Align pipe-delimited tables",
		Long: `Read a pipe-delimited table from a file or stdin and print it with
every column padded to the width of its widest cell.`,
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{annotationDefaultOutput: string(output.FormatMarkdown)},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Ensure Cobra doesn't emit its own error/usage text; we handle error output centrally.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				if !isConfigCommand(cmd) {
					return fmt.Errorf("failed to load config: %w", err)
				}
				// config subcommands must still work to repair a broken file.
				cfg = &config.Config{}
			}

			opts, err := parseGlobalOptions(cmd, cfg, globalFlagInput{
				outputFlag:   outputFlag,
				queryFlag:    queryFlag,
				jsonPathFlag: jsonPathFlag,
				compactJSON:  compactJSON,
				quietFlag:    quietFlag,
				debugMode:    debugMode,
				logFormat:    logFormat,
				colorFlag:    colorFlag,
				errorFormat:  errorFormat,
			})
			if err != nil {
				return err
			}

			logging.Setup(logging.Options{
				Debug:  opts.debug,
				Format: opts.logFormat,
				Writer: app.Stderr,
			})

			// Inject parsed global options into context so subcommands can access them.
			ctx := buildRootContext(cmd.Context(), app, cfg, opts)
			cmd.SetContext(ctx)

			return validateGlobalOptions(&opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd.Context(), args, formatOptions{
				check: checkFlag,
				write: writeFlag,
			})
		},
	}

	// Flag parse errors happen before pre-run; keep Cobra quiet for those too.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	// Set version info
	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(versionString(app) + "\n")

	rootCmd.Flags().BoolVarP(&checkFlag, "check", "c", false, "Exit 5 if the input is not already aligned; print nothing")
	rootCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Rewrite the file in place instead of printing")

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: markdown|json|ndjson|yaml|grid")
	rootCmd.PersistentFlags().StringVarP(&queryFlag, "query", "q", "", "JQ expression to filter structured output")
	rootCmd.PersistentFlags().StringVar(&jsonPathFlag, "jsonpath", "", "Extract a value using JSONPath (e.g. $.rows[0][1])")
	rootCmd.PersistentFlags().BoolVar(&compactJSON, "compact-json", false, "Output compact JSON (single-line) instead of pretty JSON")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress hints and warnings")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Debug log format (text|json)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Color diagnostics (auto|always|never)")
	rootCmd.PersistentFlags().StringVar(&errorFormat, "error-format", "auto", "Error output format (auto|text|json|yaml)")

	// Flag aliases
	flagAlias(rootCmd.PersistentFlags(), "output", "out")
	flagAlias(rootCmd.PersistentFlags(), "query", "jq")
	flagAlias(rootCmd.PersistentFlags(), "compact-json", "cj")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.WrapUserError(err, "invalid usage", fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()))
	})

	// Register subcommands
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newWidthsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMCPCmd(app))
	rootCmd.AddCommand(newVersionCmd(app))
	rootCmd.AddCommand(newCompletionCmd())

	installRootHelp(rootCmd)

	return rootCmd
}

func isConfigCommand(cmd *cobra.Command) bool {
	return cmd.Name() == "config" || (cmd.Parent() != nil && cmd.Parent().Name() == "config")
}

func installRootHelp(root *cobra.Command) {
	defaultHelp := root.HelpFunc()

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != root {
			defaultHelp(cmd, args)
			return
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), rootHelpText)
	})
}
