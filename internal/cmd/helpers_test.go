package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

type runResult struct {
	stdout string
	stderr string
	err    error
}

// isolateEnv points the config at an empty temp file and clears
// environment that changes output.
func isolateEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tablefmt", "config.yaml")
	t.Setenv("TFMT_CONFIG", path)
	t.Setenv(EnvOutput, "")
	t.Setenv("NO_COLOR", "1")
	return path
}

// runApp executes the CLI with stdin and captured output streams.
func runApp(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := &App{
		Stdin:     strings.NewReader(stdin),
		Stdout:    &stdout,
		Stderr:    &stderr,
		Version:   "1.2.3",
		Commit:    "abc123",
		BuildTime: "2026-01-01",
	}
	err := app.Execute(context.Background(), args)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
