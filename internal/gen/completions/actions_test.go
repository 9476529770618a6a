package completions

import (
	"testing"

	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/reeflective/argtree/args"
	"github.com/reeflective/argtree/internal/gen/flags"
	"github.com/reeflective/argtree/internal/opts"
	"github.com/reeflective/argtree/tree"
)

func TestFlagAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		arg   args.Arg
		found bool
	}{
		{"switch", args.NewFlag(args.New("verbose").Long("verbose")), false},
		{"choices", args.NewOption(args.New("shell").Long("shell").PossibleValues("bash", "zsh")), true},
		{"file name", args.NewOption(args.New("file").Long("file")), true},
		{"dir value name", args.NewOption(args.New("output").Long("output").ValueNames("dir")), true},
		{"no hint", args.NewOption(args.New("user").Long("user")), false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, found := FlagAction(test.arg)
			assert.Equal(t, test.found, found)
		})
	}
}

func TestSubcommandValues(t *testing.T) {
	t.Parallel()

	root := tree.NewRoot("rustup")
	toolchain := root.Add("toolchain")
	toolchain.Add("install", tree.Visible("i"))
	root.Add("update", tree.Hidden("upgrade"))

	walker := tree.NewWalker()

	assert.Equal(t, []string{
		"toolchain", "rustup toolchain",
		"update", "rustup update",
	}, SubcommandValues(walker, root))

	assert.Equal(t, []string{
		"install", "rustup toolchain install",
		"i", "rustup toolchain i",
	}, SubcommandValues(walker, toolchain))

	assert.Nil(t, SubcommandValues(walker, tree.Find(root, "update")))
}

// deployCmd returns a command with a persistent flag inherited by its subcommand.
func deployCmd(t *testing.T) (*cobra.Command, *cobra.Command) {
	t.Helper()

	root := &cobra.Command{Use: "deploy", Run: func(*cobra.Command, []string) {}}
	root.Flags().String("shell", "", "Target shell")
	root.Flags().String("user", "", "Remote user")
	root.PersistentFlags().String("config", "", "Configuration file")
	require.NoError(t, flags.Annotate(root, "shell", flags.ChoicesAnnotation, "bash", "zsh"))
	require.NoError(t, flags.Annotate(root, "config", flags.ValueNamesAnnotation, "file"))

	sub := &cobra.Command{Use: "status", Run: func(*cobra.Command, []string) {}}
	sub.Flags().String("dir", "", "Working directory")
	root.AddCommand(sub)

	return root, sub
}

func actionNames(actions carapace.ActionMap) []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func TestFlagActions(t *testing.T) {
	t.Parallel()

	root, sub := deployCmd(t)

	actions, err := FlagActions(root, opts.DefOpts())
	require.NoError(t, err)

	// The persistent flag is registered by its declaring command,
	// the flag without choices nor value hint is not.
	assert.Equal(t, []string{"config", "shell"}, actionNames(actions))

	// The inherited persistent flag is left to the parent.
	actions, err = FlagActions(sub, opts.DefOpts())
	require.NoError(t, err)
	assert.Equal(t, []string{"dir"}, actionNames(actions))

	_, err = FlagActions(nil, opts.DefOpts())
	require.Error(t, err)
}

// TestGenerate registers completions on a command tree, then runs
// the carapace engine checks on it. Carapace storage is global,
// so this test does not run in parallel.
func TestGenerate(t *testing.T) {
	root, _ := deployCmd(t)

	comps, err := Generate(root, opts.DefOpts())
	require.NoError(t, err)
	require.NotNil(t, comps)

	carapace.Test(t)
}
