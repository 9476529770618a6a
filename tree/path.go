package tree

import (
	"fmt"
	"strings"

	"github.com/reeflective/argtree/internal/errors"
)

const (
	pathSeparator = " "
	idSeparator   = "_"
)

// aliasPath replaces the last segment of a separated path with alias.
// A path with a single segment becomes the alias itself.
func aliasPath(path, sep, alias string) string {
	last := strings.LastIndex(path, sep)
	if last < 0 {
		return alias
	}

	return path[:last+len(sep)] + alias
}

// identifier turns an invocation path into a script-safe identifier.
func identifier(binName string) string {
	return strings.ReplaceAll(binName, pathSeparator, idSeparator)
}

// mustBinName returns the invocation path of a node, which is never
// empty in a tree built correctly.
func mustBinName(node *Node) string {
	if node.BinName == "" {
		panic(fmt.Errorf("%w: %q", errors.ErrMalformedTree, node.Name))
	}

	return node.BinName
}
