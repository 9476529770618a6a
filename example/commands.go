package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reeflective/argtree"
)

//
// This file contains the command tree of the example, a toolchain manager
// with nested subcommands, aliases and a few annotated flags.
//

func toolchainCommands() *cobra.Command {
	toolchain := &cobra.Command{
		Use:   "toolchain",
		Short: "Install, uninstall, or list toolchains",
	}

	install := &cobra.Command{
		Use:     "install",
		Short:   "Install or update a given toolchain",
		Aliases: []string{"i"},
		Run:     printArgs,
	}
	install.Flags().String("profile", "default", "Installation profile")
	install.Flags().StringSliceP("component", "c", nil, "Components to install")
	install.Flags().Bool("force", false, "Force an update")
	must(argtree.SetChoices(install, "profile", "minimal", "default", "complete"))
	must(argtree.SetValueNames(install, "component", "name"))

	uninstall := &cobra.Command{
		Use:     "uninstall",
		Short:   "Uninstall a toolchain",
		Aliases: []string{"rm"},
		Run:     printArgs,
	}

	toolchain.AddCommand(install, uninstall)

	return toolchain
}

func targetCommands() *cobra.Command {
	target := &cobra.Command{
		Use:   "target",
		Short: "Modify a toolchain's supported targets",
	}

	add := &cobra.Command{
		Use:     "add",
		Short:   "Add a target to a toolchain",
		Aliases: []string{"install"},
		Run:     printArgs,
	}
	add.Flags().String("toolchain", "", "Toolchain name")
	add.Flags().String("jobs", "", "Parallel downloads")
	must(argtree.SetValidation(add, "jobs", "numeric"))

	target.AddCommand(add)

	return target
}

func updateCommand() *cobra.Command {
	update := &cobra.Command{
		Use:     "update",
		Short:   "Update toolchains and the manager itself",
		Aliases: []string{"upgrade"},
		Run:     printArgs,
	}
	update.Flags().Bool("no-self-update", false, "Don't perform self update")
	update.Flags().String("manifest", "", "Local manifest file")
	must(argtree.SetValueNames(update, "manifest", "file"))
	must(argtree.SetConflicts(update, "manifest", "no-self-update"))

	return update
}

// printArgs validates the flags set on the command line
// against their descriptors, and prints them.
func printArgs(cmd *cobra.Command, _ []string) {
	list, err := argtree.Args(cmd, argtree.WithValidation())
	if err != nil {
		fmt.Println(err)

		return
	}

	for _, arg := range list {
		flag := cmd.Flags().Lookup(arg.Name())
		if flag == nil || !flag.Changed {
			continue
		}

		status := "ok"
		if err := validate(arg, flag.Value.String()); err != nil {
			status = err.Error()
		}

		fmt.Printf("%-30s %-12s %s\n", arg, flag.Value, status)
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
