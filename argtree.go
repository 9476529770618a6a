// Package argtree describes the arguments and command hierarchies of
// command-line programs, for use by usage writers and shell completion
// generators.
//
// The argument descriptors live in the "args" subpackage: options, flags
// and positionals all implement args.Arg, and render themselves into usage
// fragments such as "--output <file>" or "-o <file> <name>". The "tree"
// subpackage lists subcommands, their aliases and their invocation paths
// in any command tree.
//
// This package builds both from spf13/cobra commands and spf13/pflag flags,
// and uses them to register rsteube/carapace completions.
package argtree

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/argtree/args"
	"github.com/reeflective/argtree/internal/errors"
	"github.com/reeflective/argtree/internal/gen/commands"
	"github.com/reeflective/argtree/internal/gen/completions"
	"github.com/reeflective/argtree/internal/gen/flags"
	"github.com/reeflective/argtree/internal/opts"
	"github.com/reeflective/argtree/internal/validation"
	"github.com/reeflective/argtree/tree"
)

// === Primary Entry Points ===

// Tree returns the command tree rooted at cmd. Hidden, deprecated and
// help commands are not part of it, unless WithHidden is used.
func Tree(cmd *cobra.Command, opts ...Option) (*tree.Node, error) {
	node, err := commands.Generate(cmd, toInternalOpts(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to generate command tree: %w", err)
	}

	return node, nil
}

// Args returns the descriptors of all flags usable by cmd, local ones first.
func Args(cmd *cobra.Command, opts ...Option) ([]args.Arg, error) {
	list, err := flags.Generate(cmd, toInternalOpts(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to generate descriptors: %w", err)
	}

	return list, nil
}

// Requirements returns the arguments required by the required arguments of the list.
func Requirements(list []args.Arg) []string {
	var reqs []string
	for _, arg := range list {
		reqs = args.CollectRequirements(reqs, arg)
	}

	return reqs
}

// WriteUsage writes the usage fragment of every visible flag of cmd,
// one per line, in display order.
func WriteUsage(w io.Writer, cmd *cobra.Command, opts ...Option) error {
	list, err := Args(cmd, opts...)
	if err != nil {
		return err
	}

	list = args.Visible(list)
	args.Sort(list)

	for _, arg := range list {
		if err := args.WriteUsage(w, arg); err != nil {
			return fmt.Errorf("failed to write usage of %s: %w", arg.Name(), err)
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("failed to write usage: %w", err)
		}
	}

	return nil
}

// Completions registers flag value completions on cmd and its subcommands,
// from their descriptors, and returns the carapace of cmd.
func Completions(cmd *cobra.Command, opts ...Option) (*carapace.Carapace, error) {
	if cmd == nil {
		return nil, fmt.Errorf("%w: command", errors.ErrNilObject)
	}

	comps, err := completions.Generate(cmd, toInternalOpts(opts))
	if err != nil {
		return comps, fmt.Errorf("failed to generate completions: %w", err)
	}

	return comps, nil
}

// Walker returns a command tree walker, logging its walks
// to the logger set with WithLogger.
func Walker(opts ...Option) *tree.Walker {
	return tree.NewWalker(tree.WithLogger(toInternalOpts(opts).Logger))
}

// ActionSubcommands completes the immediate subcommands of node,
// described by their full invocation path.
func ActionSubcommands(node *tree.Node, opts ...Option) carapace.Action {
	return completions.ActionSubcommands(Walker(opts...), node)
}

// === Flag annotations ===

// SetChoices restricts the values of a flag of cmd to a closed set.
func SetChoices(cmd *cobra.Command, flag string, choices ...string) error {
	return flags.Annotate(cmd, flag, flags.ChoicesAnnotation, choices...)
}

// SetValueNames sets the labels of the value slots of a flag of cmd.
func SetValueNames(cmd *cobra.Command, flag string, names ...string) error {
	return flags.Annotate(cmd, flag, flags.ValueNamesAnnotation, names...)
}

// SetValidation sets the go-playground/validator tag checking the values
// of a flag of cmd. It is only used with WithValidation or WithValidator.
func SetValidation(cmd *cobra.Command, flag, tag string) error {
	return flags.Annotate(cmd, flag, flags.ValidateAnnotation, tag)
}

// SetRequires sets the flags that must be present when the flag is.
func SetRequires(cmd *cobra.Command, flag string, names ...string) error {
	return flags.Annotate(cmd, flag, flags.RequiresAnnotation, names...)
}

// SetConflicts sets the flags that cannot be used with the flag.
func SetConflicts(cmd *cobra.Command, flag string, names ...string) error {
	return flags.Annotate(cmd, flag, flags.ConflictsAnnotation, names...)
}

// === Configuration (Functional Options) ===

// Option is a functional option for configuring generation.
type Option func(o *opts.Opts)

func toInternalOpts(options []Option) *opts.Opts {
	o := opts.DefOpts()
	for _, opt := range options {
		opt(o)
	}

	return o
}

// WithLogger traces generation, and the walks of walkers returned
// by Walker, at debug level.
func WithLogger(logger *log.Logger) Option {
	return Option(opts.Logger(logger))
}

// WithHidden includes hidden and deprecated commands and flags.
func WithHidden() Option {
	return Option(opts.Hidden())
}

// WithValidation builds validators for flags annotated with SetValidation.
// This makes use of go-playground/validator internally, refer to their docs
// for an exhaustive list of valid tag validations.
func WithValidation() Option {
	return Option(opts.Validator(validation.NewDefault()))
}

// WithValidator is like WithValidation, but uses a go-playground/validator
// object on which custom validations might have been registered.
func WithValidator(v *validator.Validate) Option {
	return Option(opts.Validator(validation.NewWith(v)))
}

// === Core Types ===

// Arg is the query surface shared by all argument descriptors.
type Arg = args.Arg

// Node is a command in a command tree.
type Node = tree.Node

// Entry is a subcommand name paired with its full invocation path.
type Entry = tree.Entry

// === Public Errors ===

var (
	// ErrNoSwitch is the panic value of rendering a flag or option without switches.
	ErrNoSwitch = errors.ErrNoSwitch

	// ErrMalformedTree is the panic value of walking a command without invocation path.
	ErrMalformedTree = errors.ErrMalformedTree

	// ErrInvalidChoice indicates a value outside the possible values of an argument.
	ErrInvalidChoice = errors.ErrInvalidChoice

	// ErrInvalidValue indicates a value rejected by an argument validator.
	ErrInvalidValue = errors.ErrInvalidValue

	// ErrNilObject indicates that an object is nil although it should not.
	ErrNilObject = errors.ErrNilObject

	// ErrUnknownFlag indicates that an annotated flag is not declared by the command.
	ErrUnknownFlag = errors.ErrUnknownFlag
)
