package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/tablefmt/internal/output"
)

type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
}

func versionString(app *App) string {
	return fmt.Sprintf("tfmt %s (commit: %s, built: %s)", app.Version, app.Commit, app.BuildTime)
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if output.FormatFromContext(ctx).IsStructured() {
				return printerForContext(ctx).Print(ctx, versionInfo{
					Version:   app.Version,
					Commit:    app.Commit,
					BuildTime: app.BuildTime,
				})
			}
			_, err := fmt.Fprintln(stdoutFromContext(ctx), versionString(app))
			return err
		},
	}
}
