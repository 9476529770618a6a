package tree

import (
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
)

// Walker lists subcommands of command trees.
// The zero value is not usable, use NewWalker.
type Walker struct {
	logger *log.Logger
}

// Option configures a Walker.
type Option func(w *Walker)

// WithLogger traces each step of the walks at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWalker returns a walker configured with the given options.
func NewWalker(opts ...Option) *Walker {
	walker := &Walker{
		logger: log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(walker)
	}

	return walker
}

var defaultWalker = NewWalker()

// Subcommands returns the immediate subcommands of node, see Walker.Subcommands.
func Subcommands(node *Node) []Entry { return defaultWalker.Subcommands(node) }

// AllSubcommands returns all subcommands of node, see Walker.AllSubcommands.
func AllSubcommands(node *Node) []Entry { return defaultWalker.AllSubcommands(node) }

// AllSubcommandNames returns all subcommand names of node, see Walker.AllSubcommandNames.
func AllSubcommandNames(node *Node) []string { return defaultWalker.AllSubcommandNames(node) }

// SubcommandPaths returns the leaf identifiers of node, see Walker.SubcommandPaths.
func SubcommandPaths(node *Node, root bool) []string {
	return defaultWalker.SubcommandPaths(node, root)
}

// Subcommands returns the (name, bin name) entries of the immediate
// subcommands of node, each followed by one entry per visible alias.
// An alias entry has the path of its command, with the last word
// replaced by the alias.
//
// A command without subcommands returns its own entry and aliases.
func (w *Walker) Subcommands(node *Node) []Entry {
	w.logger.Debug("Listing subcommands", "name", node.Name, "bin_name", node.BinName)

	if node.IsLeaf() {
		w.logger.Debug("No subcommands", "name", node.Name)

		return w.entries(node)
	}

	var entries []Entry

	for _, child := range node.Children {
		entries = append(entries, w.entries(child)...)
	}

	return entries
}

// AllSubcommands returns the entries of Subcommands for node, followed by
// those of every command in the tree, depth-first. Commands reached through
// several paths are listed each time.
func (w *Walker) AllSubcommands(node *Node) []Entry {
	entries := w.Subcommands(node)

	for _, child := range node.Children {
		entries = append(entries, w.AllSubcommands(child)...)
	}

	return entries
}

// AllSubcommandNames returns every subcommand name and visible alias
// found in the tree, sorted and without duplicates.
func (w *Walker) AllSubcommandNames(node *Node) []string {
	entries := w.AllSubcommands(node)

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// SubcommandPaths returns the invocation paths of all leaf commands below
// node, with spaces replaced by underscores ("rustup_toolchain_install"),
// each followed by the paths of its visible aliases.
//
// If root is true and node has no subcommands, nothing is returned: the root
// command is never a completion target by itself.
func (w *Walker) SubcommandPaths(node *Node, root bool) []string {
	if node.IsLeaf() {
		if root {
			return nil
		}

		binName := mustBinName(node)
		paths := []string{identifier(binName)}

		for _, alias := range node.VisibleAliases() {
			paths = append(paths, identifier(aliasPath(binName, pathSeparator, alias)))
		}

		w.logger.Debug("Leaf command", "name", node.Name, "paths", paths)

		return paths
	}

	var paths []string

	for _, child := range node.Children {
		paths = append(paths, w.SubcommandPaths(child, false)...)
	}

	return paths
}

// entries returns the entry of a command followed by its visible aliases.
func (w *Walker) entries(node *Node) []Entry {
	binName := mustBinName(node)
	entries := []Entry{{Name: node.Name, BinName: binName}}

	for _, alias := range node.VisibleAliases() {
		w.logger.Debug("Found alias", "command", node.Name, "alias", alias)

		entries = append(entries, Entry{
			Name:    alias,
			BinName: aliasPath(binName, pathSeparator, alias),
		})
	}

	return entries
}
