// Package tree walks command hierarchies to list the subcommands, their
// aliases and their full invocation paths, as needed by completion script
// generators.
package tree

import (
	"github.com/reeflective/argtree/args"
)

// Node is a command in a command tree.
// The BinName of a child is always its parent BinName, a space, and its Name.
type Node struct {
	Name     string
	BinName  string
	Aliases  []args.Alias
	Children []*Node
}

// Entry is a (sub)command name paired with its full invocation path,
// such as ("install", "rustup toolchain install").
type Entry struct {
	Name    string
	BinName string
}

// NewRoot returns a root command node, whose invocation path is its name.
func NewRoot(name string) *Node {
	return &Node{Name: name, BinName: name}
}

// Add creates a child command, appends it to the node children and returns it.
func (n *Node) Add(name string, aliases ...args.Alias) *Node {
	child := &Node{
		Name:    name,
		BinName: n.BinName + " " + name,
		Aliases: aliases,
	}
	n.Children = append(n.Children, child)

	return child
}

// IsLeaf returns true if the command has no subcommands.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// VisibleAliases returns the names of the visible aliases of the command.
func (n *Node) VisibleAliases() []string {
	return args.VisibleAliases(n.Aliases)
}

// Matches returns true if name is the command name or any of its aliases,
// hidden ones included.
func (n *Node) Matches(name string) bool {
	if n.Name == name {
		return true
	}

	for _, alias := range n.Aliases {
		if alias.Name == name {
			return true
		}
	}

	return false
}

// Visible returns an alias shown in help and completions.
func Visible(name string) args.Alias {
	return args.Alias{Name: name, Visible: true}
}

// Hidden returns an alias only used for matching.
func Hidden(name string) args.Alias {
	return args.Alias{Name: name}
}
