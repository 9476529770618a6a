package tree

// Find returns the command reached by following the given names from node.
// Each name can be a command name or any of its aliases.
// It returns nil if no such command exists.
func Find(node *Node, path ...string) *Node {
	current := node

	for _, name := range path {
		var next *Node

		for _, child := range current.Children {
			if child.Matches(name) {
				next = child

				break
			}
		}

		if next == nil {
			return nil
		}

		current = next
	}

	return current
}

// Closest returns the subcommand name, anywhere in the tree, closest to token,
// and its edit distance. It returns an empty name if the tree has no subcommands.
func Closest(node *Node, token string) (string, int) {
	if node.IsLeaf() {
		return "", 0
	}

	return closestChoice(token, AllSubcommandNames(node))
}

// maxSuggestDistance is the largest edit distance of a suggested name.
const maxSuggestDistance = 2

// Suggest returns a command name for the first name of path that does not
// resolve from node, see Walker.Suggest.
func Suggest(node *Node, path ...string) (string, bool) {
	return defaultWalker.Suggest(node, path...)
}

// Suggest resolves path from node as far as it can, and returns the
// subcommand name (or visible alias) of the deepest resolved command that
// is closest to the first unresolved name. Only names at most two edits
// away, and different from it, are suggested. It returns false if path
// fully resolves or nothing is close enough.
func (w *Walker) Suggest(node *Node, path ...string) (string, bool) {
	parent := node

	for i, name := range path {
		next := Find(parent, name)
		if next != nil {
			parent = next

			continue
		}

		if parent.IsLeaf() {
			return "", false
		}

		entries := w.Subcommands(parent)

		names := make([]string, len(entries))
		for j, entry := range entries {
			names[j] = entry.Name
		}

		closest, dist := closestChoice(name, names)
		w.logger.Debug("Closest subcommand", "token", name, "depth", i, "closest", closest, "distance", dist)

		if dist == 0 || dist > maxSuggestDistance {
			return "", false
		}

		return closest, true
	}

	return "", false
}

func levenshtein(str string, tgt string) int {
	src, dst := []rune(str), []rune(tgt)

	if len(src) == 0 {
		return len(dst)
	}

	if len(dst) == 0 {
		return len(src)
	}

	dists := make([][]int, len(src)+1)
	for i := range dists {
		dists[i] = make([]int, len(dst)+1)
		dists[i][0] = i
	}

	for j := 0; j < len(dst)+1; j++ {
		dists[0][j] = j
	}

	for sidx, sc := range src {
		for tidx, tc := range dst {
			if sc == tc {
				dists[sidx+1][tidx+1] = dists[sidx][tidx]

				continue
			}

			dists[sidx+1][tidx+1] = min(
				dists[sidx][tidx],
				dists[sidx+1][tidx],
				dists[sidx][tidx+1],
			) + 1
		}
	}

	return dists[len(src)][len(dst)]
}

func closestChoice(cmd string, choices []string) (string, int) {
	if len(choices) == 0 {
		return "", 0
	}

	mincmd := -1
	mindist := -1

	for i, c := range choices {
		l := levenshtein(cmd, c)

		if mincmd < 0 || l < mindist {
			mindist = l
			mincmd = i
		}
	}

	return choices[mincmd], mindist
}
