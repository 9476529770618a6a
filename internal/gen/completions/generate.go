package completions

import (
	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/argtree/args"
	"github.com/reeflective/argtree/internal/gen/flags"
	"github.com/reeflective/argtree/internal/opts"
)

// Generate registers flag value completions for cmd and all its subcommands,
// built from their argument descriptors. It returns the carapace of cmd.
func Generate(cmd *cobra.Command, o *opts.Opts) (*carapace.Carapace, error) {
	comps := carapace.Gen(cmd)

	actions, err := FlagActions(cmd, o)
	if err != nil {
		return comps, err
	}

	if len(actions) > 0 {
		o.Logger.Debug("Flag completions", "command", cmd.CommandPath(), "flags", len(actions))
		comps.FlagCompletion(actions)
	}

	for _, sub := range cmd.Commands() {
		if _, err := Generate(sub, o); err != nil {
			return comps, err
		}
	}

	return comps, nil
}

// FlagActions returns the value completions of the flags of cmd, keyed by
// flag name. Inherited flags are left to the parent declaring them.
func FlagActions(cmd *cobra.Command, o *opts.Opts) (carapace.ActionMap, error) {
	list, err := flags.Generate(cmd, o)
	if err != nil {
		return nil, err
	}

	actions := make(carapace.ActionMap)

	for _, arg := range list {
		if arg.IsSet(args.Global) && cmd.PersistentFlags().Lookup(arg.Name()) == nil {
			continue
		}

		if action, found := FlagAction(arg); found {
			actions[arg.Name()] = action
		}
	}

	return actions, nil
}
