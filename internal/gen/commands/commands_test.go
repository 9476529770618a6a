package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/argtree/internal/errors"
	"github.com/reeflective/argtree/internal/opts"
	"github.com/reeflective/argtree/tree"
)

func newCmd(use string, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Run:     func(*cobra.Command, []string) {},
	}
}

// rustupCmd returns a cobra tree with a hidden and a deprecated command.
func rustupCmd() *cobra.Command {
	root := newCmd("rustup")

	toolchain := newCmd("toolchain")
	toolchain.AddCommand(newCmd("install", "i"), newCmd("uninstall"))

	hidden := newCmd("internal")
	hidden.Hidden = true

	old := newCmd("self-update")
	old.Deprecated = "use update"

	root.AddCommand(toolchain, newCmd("update [flags]", "upgrade"), hidden, old)
	root.InitDefaultHelpCmd()

	return root
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	node, err := Generate(rustupCmd(), opts.DefOpts())
	require.NoError(t, err)

	assert.Equal(t, "rustup", node.Name)
	assert.Equal(t, "rustup", node.BinName)
	require.Len(t, node.Children, 2)

	install := tree.Find(node, "toolchain", "i")
	require.NotNil(t, install)
	assert.Equal(t, "rustup toolchain install", install.BinName)

	expected := []tree.Entry{
		{Name: "toolchain", BinName: "rustup toolchain"},
		{Name: "update", BinName: "rustup update"},
		{Name: "upgrade", BinName: "rustup upgrade"},
	}
	assert.Equal(t, expected, tree.Subcommands(node))

	assert.Equal(t, []string{
		"rustup_toolchain_install",
		"rustup_toolchain_i",
		"rustup_toolchain_uninstall",
		"rustup_update",
		"rustup_upgrade",
	}, tree.SubcommandPaths(node, true))
}

func TestGenerateHidden(t *testing.T) {
	t.Parallel()

	node, err := Generate(rustupCmd(), opts.DefOpts().Apply(opts.Hidden()))
	require.NoError(t, err)

	assert.NotNil(t, tree.Find(node, "internal"))
	assert.NotNil(t, tree.Find(node, "self-update"))
	assert.NotNil(t, tree.Find(node, "help"))
}

func TestGenerateSubtree(t *testing.T) {
	t.Parallel()

	toolchain, _, err := rustupCmd().Find([]string{"toolchain"})
	require.NoError(t, err)

	node, err := Generate(toolchain, opts.DefOpts())
	require.NoError(t, err)

	assert.Equal(t, "rustup toolchain", node.BinName)
	assert.Equal(t, []string{"i", "install", "uninstall"}, tree.AllSubcommandNames(node))
}

func TestGenerateNil(t *testing.T) {
	t.Parallel()

	_, err := Generate(nil, opts.DefOpts())
	require.ErrorIs(t, err, errors.ErrNilObject)
}
