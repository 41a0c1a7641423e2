package cmd

import (
	"io"
	"testing"
)

func TestRootFlagParity_HiddenAliases(t *testing.T) {
	root := NewApp().RootCommand()

	tests := []struct {
		base  string
		alias string
	}{
		{base: "output", alias: "out"},
		{base: "query", alias: "jq"},
		{base: "compact-json", alias: "cj"},
	}

	for _, tt := range tests {
		t.Run(tt.base+"->"+tt.alias, func(t *testing.T) {
			base := root.PersistentFlags().Lookup(tt.base)
			if base == nil {
				t.Fatalf("base flag --%s not found", tt.base)
			}
			alias := root.PersistentFlags().Lookup(tt.alias)
			if alias == nil {
				t.Fatalf("alias flag --%s not found", tt.alias)
			}
			if !alias.Hidden {
				t.Fatalf("alias flag --%s should be hidden", tt.alias)
			}
			if alias.Value != base.Value {
				t.Fatalf("alias --%s should share the value of --%s", tt.alias, tt.base)
			}
		})
	}
}

func TestFlagAlias_MissingBaseIsNoop(t *testing.T) {
	root := NewApp().RootCommand()
	flagAlias(root.PersistentFlags(), "does-not-exist", "dne")
	if root.PersistentFlags().Lookup("dne") != nil {
		t.Fatal("alias for a missing flag should not be registered")
	}
}

func TestCommandFlagChanged_SeesAliasAndParent(t *testing.T) {
	isolateEnv(t)
	root := NewApp().RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"parse", "--out", "yaml", "--help"})
	_ = root.Execute()

	parse, _, err := root.Find([]string{"parse"})
	if err != nil {
		t.Fatal(err)
	}
	if !commandFlagChanged(parse, "out") {
		t.Error("--out should be reported as changed on the subcommand")
	}
	if commandFlagChanged(parse, "query") {
		t.Error("--query was not set")
	}
}
