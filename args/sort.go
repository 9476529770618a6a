package args

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// Sort orders arguments by display order, then by name.
// Arguments comparing equal keep their relative order.
func Sort(list []Arg) {
	slices.SortStableFunc(list, func(a, b Arg) int {
		if c := cmp.Compare(a.DisplayOrder(), b.DisplayOrder()); c != 0 {
			return c
		}

		return cmp.Compare(a.Name(), b.Name())
	})
}

// Visible returns the arguments that are not hidden, in order.
func Visible(list []Arg) []Arg {
	visible := make([]Arg, 0, len(list))

	for _, arg := range list {
		if !arg.IsSet(Hidden) {
			visible = append(visible, arg)
		}
	}

	return visible
}
