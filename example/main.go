package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/argtree"
	"github.com/reeflective/argtree/args"
	"github.com/reeflective/argtree/tree"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "rustup",
		Short:        "A toolchain manager showing argument descriptors and command tree walks.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(toolchainCommands(), targetCommands(), updateCommand())
	rootCmd.AddCommand(usageCommand(rootCmd))

	// Completions (recursive)
	comps, err := argtree.Completions(rootCmd)
	if err != nil {
		log.Fatal("Failed to generate completions", "err", err)
	}

	comps.Standalone()

	// Execute the command (application here)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// usageCommand prints the usage of the flags and the subcommand
// paths of any command in the tree.
func usageCommand(root *cobra.Command) *cobra.Command {
	usage := &cobra.Command{
		Use:   "usage [command...]",
		Short: "Print flag usages and subcommand paths",
		RunE: func(cmd *cobra.Command, path []string) error {
			var options []argtree.Option

			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
				options = append(options, argtree.WithLogger(logger))
			}

			node, err := argtree.Tree(root, options...)
			if err != nil {
				return err
			}

			walker := argtree.Walker(options...)

			target := tree.Find(node, path...)
			if target == nil {
				if closest, found := walker.Suggest(node, path...); found {
					return fmt.Errorf("unknown command %q, did you mean %q?", strings.Join(path, " "), closest)
				}

				return fmt.Errorf("unknown command %q", strings.Join(path, " "))
			}

			sub, _, err := root.Find(path)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n\n", target.BinName)

			if err := argtree.WriteUsage(os.Stdout, sub, options...); err != nil {
				return err
			}

			fmt.Println()

			for _, entry := range walker.Subcommands(target) {
				fmt.Printf("%-12s %s\n", entry.Name, entry.BinName)
			}

			fmt.Println()

			for _, path := range walker.SubcommandPaths(target, target == node) {
				fmt.Println(path)
			}

			return nil
		},
	}
	usage.Flags().Bool("debug", false, "Log tree walks")

	// Each positional word is a subcommand of the previous ones.
	carapace.Gen(usage).PositionalAnyCompletion(
		carapace.ActionCallback(func(ctx carapace.Context) carapace.Action {
			node, err := argtree.Tree(root)
			if err != nil {
				return carapace.ActionMessage(err.Error())
			}

			target := tree.Find(node, ctx.Args...)
			if target == nil || target.IsLeaf() {
				return carapace.ActionValues()
			}

			return argtree.ActionSubcommands(target)
		}),
	)

	return usage
}

// validate checks every value of a flag that might have been repeated.
func validate(arg args.Arg, value string) error {
	value = strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")

	return args.Validate(arg, value)
}
