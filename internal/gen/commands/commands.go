// Package commands builds command trees from cobra commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reeflective/argtree/args"
	"github.com/reeflective/argtree/internal/errors"
	"github.com/reeflective/argtree/internal/opts"
	"github.com/reeflective/argtree/tree"
)

// Generate returns the command tree rooted at cmd. Names come from the
// command Use line, invocation paths from the command path and aliases
// from cobra aliases, which are all visible. Hidden, deprecated and help
// commands are skipped unless the Hidden option is set.
func Generate(cmd *cobra.Command, o *opts.Opts) (*tree.Node, error) {
	if cmd == nil {
		return nil, fmt.Errorf("%w: command", errors.ErrNilObject)
	}

	return build(cmd, o), nil
}

func build(cmd *cobra.Command, o *opts.Opts) *tree.Node {
	node := &tree.Node{
		Name:    cmd.Name(),
		BinName: cmd.CommandPath(),
		Aliases: aliases(cmd),
	}

	o.Logger.Debug("Command node", "name", node.Name, "bin_name", node.BinName, "aliases", cmd.Aliases)

	for _, sub := range cmd.Commands() {
		if skip(sub) && !o.Hidden {
			continue
		}

		node.Children = append(node.Children, build(sub, o))
	}

	return node
}

func aliases(cmd *cobra.Command) []args.Alias {
	if len(cmd.Aliases) == 0 {
		return nil
	}

	list := make([]args.Alias, len(cmd.Aliases))
	for i, alias := range cmd.Aliases {
		list[i] = args.Alias{Name: alias, Visible: true}
	}

	return list
}

// skip returns true for commands that are not offered to users.
func skip(cmd *cobra.Command) bool {
	if cmd.Hidden || cmd.Deprecated != "" {
		return true
	}

	switch cmd.Name() {
	case "help", "_carapace", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}

	return false
}
