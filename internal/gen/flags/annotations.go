package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reeflective/argtree/internal/errors"
)

// Flag annotations read when building descriptors.
const (
	ChoicesAnnotation    = "argtree_choices"
	ValueNamesAnnotation = "argtree_value_names"
	ValidateAnnotation   = "argtree_validate"
	RequiresAnnotation   = "argtree_requires"
	ConflictsAnnotation  = "argtree_conflicts"
)

// Annotations set by cobra flag groups (see cobra/flag_groups.go).
const (
	cobraRequiredAsGroup   = "cobra_annotation_required_if_others_set"
	cobraMutuallyExclusive = "cobra_annotation_mutually_exclusive"
)

// Annotate sets an annotation on a local or persistent flag of cmd,
// replacing any previous values for this key.
func Annotate(cmd *cobra.Command, name, key string, values ...string) error {
	if cmd == nil {
		return fmt.Errorf("%w: command", errors.ErrNilObject)
	}

	flag := lookup(cmd, name)
	if flag == nil {
		return fmt.Errorf("%w: %s (command %s)", errors.ErrUnknownFlag, name, cmd.Name())
	}

	if flag.Annotations == nil {
		flag.Annotations = map[string][]string{}
	}

	flag.Annotations[key] = values

	return nil
}

func lookup(cmd *cobra.Command, name string) *pflag.Flag {
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}

	return cmd.PersistentFlags().Lookup(name)
}

func isAnnotated(flag *pflag.Flag, key, value string) bool {
	for _, val := range flag.Annotations[key] {
		if val == value {
			return true
		}
	}

	return false
}

// groupPeers returns the other flags sharing a cobra flag group with flag.
// Cobra stores each group as a space-separated list of flag names.
func groupPeers(flag *pflag.Flag, key string) []string {
	var peers []string

	for _, group := range flag.Annotations[key] {
		for _, name := range strings.Fields(group) {
			if name != flag.Name {
				peers = append(peers, name)
			}
		}
	}

	return peers
}
