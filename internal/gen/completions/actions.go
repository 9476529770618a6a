// Package completions builds carapace completions out of argument
// descriptors and command trees.
package completions

import (
	"strings"

	"github.com/rsteube/carapace"

	"github.com/reeflective/argtree/args"
	"github.com/reeflective/argtree/tree"
)

// FlagAction returns the completion of the values of an argument:
// its possible values if any, or files and directories when its value
// name says so. It returns false if there is nothing to complete.
func FlagAction(arg args.Arg) (carapace.Action, bool) {
	if !arg.TakesValue() {
		return carapace.Action{}, false
	}

	if choices := arg.PossibleValues(); len(choices) > 0 {
		return carapace.ActionValues(choices...), true
	}

	hint := arg.Name()
	if labels := arg.ValueNames().Labels(); len(labels) > 0 {
		hint = labels[0]
	}

	action, found := hintAction(hint)
	if !found {
		return carapace.Action{}, false
	}

	return action, true
}

func hintAction(hint string) (carapace.Action, bool) {
	switch strings.ToLower(hint) {
	case "file", "files", "path", "paths":
		return carapace.ActionFiles(), true
	case "dir", "dirs", "directory", "directories":
		return carapace.ActionDirectories(), true
	default:
		return carapace.Action{}, false
	}
}

// SubcommandValues returns the values and descriptions completing the immediate
// subcommands of node: each name (or visible alias) is described by its path.
// A command without subcommands has nothing to complete.
func SubcommandValues(walker *tree.Walker, node *tree.Node) []string {
	if node.IsLeaf() {
		return nil
	}

	entries := walker.Subcommands(node)

	values := make([]string, 0, len(entries)*2)
	for _, entry := range entries {
		values = append(values, entry.Name, entry.BinName)
	}

	return values
}

// ActionSubcommands completes the immediate subcommands of node.
func ActionSubcommands(walker *tree.Walker, node *tree.Node) carapace.Action {
	return carapace.ActionValuesDescribed(SubcommandValues(walker, node)...)
}
