package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagAlias registers a hidden flag alias that shares the same underlying
// value, e.g. --out for --output. The alias is hidden from help output.
func flagAlias(fs *pflag.FlagSet, name, alias string) {
	f := fs.Lookup(name)
	if f == nil {
		return
	}
	fs.AddFlag(&pflag.Flag{
		Name:        alias,
		Usage:       f.Usage,
		Value:       f.Value,
		DefValue:    f.DefValue,
		NoOptDefVal: f.NoOptDefVal,
		Hidden:      true,
	})
}

// commandFlagChanged reports whether name (or a persistent flag of that
// name on any ancestor) was set on the command line.
func commandFlagChanged(cmd *cobra.Command, name string) bool {
	for current := cmd; current != nil; current = current.Parent() {
		if flag := current.Flags().Lookup(name); flag != nil && flag.Changed {
			return true
		}
		if flag := current.PersistentFlags().Lookup(name); flag != nil && flag.Changed {
			return true
		}
	}
	return false
}
