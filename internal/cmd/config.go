package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/tablefmt/internal/config"
	clierrors "github.com/salmonumbrella/tablefmt/internal/errors"
	"github.com/salmonumbrella/tablefmt/internal/logging"
	"github.com/salmonumbrella/tablefmt/internal/output"
	"github.com/salmonumbrella/tablefmt/internal/ui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manage CLI configuration",
		Long:    `Manage the tfmt configuration file at ~/.config/tablefmt/config.yaml (or $TFMT_CONFIG)`,
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cfg.IsEmpty() {
				path, _ := config.DefaultConfigPath()
				_, _ = fmt.Fprintf(out, "No configuration set in %s\n", path)
				_, _ = fmt.Fprintln(out, "\nTo create a config file, use:")
				_, _ = fmt.Fprintln(out, "  tfmt config set output grid")
				return nil
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to format config: %w", err)
			}
			_, _ = fmt.Fprint(out, string(data))
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkConfigKey(args[0]); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			value, err := cfg.Get(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(stdoutFromContext(cmd.Context()), value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.config/tablefmt/config.yaml

Supported keys:
  output        - Default output format (markdown, json, ndjson, yaml, grid)
  color         - Default color mode (auto, always, never)
  error_format  - Default error format (auto, text, json, yaml)
  log_format    - Debug log format (text, json)

Examples:
  tfmt config set output grid
  tfmt config set color never`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			key := args[0]

			if err := checkConfigKey(key); err != nil {
				return err
			}
			value, err := normalizeConfigValue(key, args[1])
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Set(key, value); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			path, _ := config.DefaultConfigPath()
			_, _ = fmt.Fprintf(out, "Set %s = %s in %s\n", key, value, path)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			path, err := config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("failed to determine config path: %w", err)
			}

			_, _ = fmt.Fprintln(out, path)

			// Show if file exists
			if _, err := os.Stat(path); err == nil {
				_, _ = fmt.Fprintln(out, "(file exists)")
			} else if os.IsNotExist(err) {
				_, _ = fmt.Fprintln(out, "(file does not exist)")
			}

			return nil
		},
	}
}

func checkConfigKey(key string) error {
	if slices.Contains(config.Keys, key) {
		return nil
	}
	return clierrors.NewUserError(
		fmt.Sprintf("unknown config key %q", key),
		"Supported keys: "+strings.Join(config.Keys, ", "),
	)
}

// normalizeConfigValue validates value with the same parser as the flag it
// defaults, and returns its canonical spelling.
func normalizeConfigValue(key, value string) (string, error) {
	switch key {
	case "output":
		format, err := output.ParseFormat(value)
		if err != nil {
			return "", clierrors.InvalidChoiceError(key, value, output.FormatNames)
		}
		return string(format), nil
	case "color":
		mode, ok := ui.ParseColorMode(value)
		if !ok {
			return "", clierrors.InvalidChoiceError(key, value, colorChoices)
		}
		return mode.String(), nil
	case "error_format":
		if err := validateErrorFormat(value); err != nil {
			return "", clierrors.InvalidChoiceError(key, value, errorFormats)
		}
		return strings.ToLower(strings.TrimSpace(value)), nil
	case "log_format":
		format, ok := logging.ParseFormat(value)
		if !ok {
			return "", clierrors.InvalidChoiceError(key, value, logFormatChoices)
		}
		return string(format), nil
	}
	return value, nil
}
