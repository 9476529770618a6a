// Package flags builds argument descriptors from the pflag flags of cobra commands.
package flags

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reeflective/argtree/args"
	"github.com/reeflective/argtree/internal/errors"
	"github.com/reeflective/argtree/internal/opts"
)

// Generate returns the descriptors of all flags usable by cmd: its local
// flags first, then those inherited from its parents. Hidden and deprecated
// flags are skipped unless the Hidden option is set.
func Generate(cmd *cobra.Command, o *opts.Opts) ([]args.Arg, error) {
	if cmd == nil {
		return nil, fmt.Errorf("%w: command", errors.ErrNilObject)
	}

	var list []args.Arg

	add := func(global bool) func(*pflag.Flag) {
		return func(flag *pflag.Flag) {
			if (flag.Hidden || flag.Deprecated != "") && !o.Hidden {
				return
			}

			def := Def(flag, o)
			if global || cmd.PersistentFlags().Lookup(flag.Name) != nil {
				def.Set(args.Global)
			}

			arg := args.FromDef(def)
			list = append(list, arg)

			o.Logger.Debug("Flag descriptor", "command", cmd.CommandPath(), "flag", flag.Name, "kind", arg.Kind())
		}
	}

	cmd.LocalFlags().VisitAll(add(false))
	cmd.InheritedFlags().VisitAll(add(true))

	return list, nil
}

// Def returns the argument definition of a flag. Boolean and count flags
// are switches without values, all other types take values.
func Def(flag *pflag.Flag, o *opts.Opts) *args.Def {
	def := args.New(flag.Name).Long(flag.Name).Help(flag.Usage)

	if short, size := utf8.DecodeRuneInString(flag.Shorthand); size > 0 {
		def.Short(short)
	}

	if isAnnotated(flag, cobra.BashCompOneRequiredFlag, "true") {
		def.Required(true)
	}

	if flag.Hidden || flag.Deprecated != "" {
		def.Set(args.Hidden)
	}

	def.Requires(flag.Annotations[RequiresAnnotation]...)
	def.Requires(groupPeers(flag, cobraRequiredAsGroup)...)
	def.ConflictsWith(flag.Annotations[ConflictsAnnotation]...)
	def.ConflictsWith(groupPeers(flag, cobraMutuallyExclusive)...)

	switch typ := flag.Value.Type(); {
	case typ == "bool":
	case typ == "count":
		def.Multiple(true)
	default:
		valueDef(def, flag, typ, o)
	}

	return def
}

// valueDef sets the value arity and constraints of flags taking values.
func valueDef(def *args.Def, flag *pflag.Flag, typ string, o *opts.Opts) {
	def.TakesValue(true)

	switch {
	case strings.HasSuffix(typ, "Slice"), strings.HasPrefix(typ, "stringTo"):
		def.Multiple(true).ValueDelimiter(',')
	case strings.HasSuffix(typ, "Array"):
		def.Multiple(true)
	}

	if flag.DefValue != "" && flag.DefValue != "[]" {
		def.Default(flag.DefValue)
	}

	if names := flag.Annotations[ValueNamesAnnotation]; len(names) > 0 {
		def.ValueNames(names...)
	}

	if choices := flag.Annotations[ChoicesAnnotation]; len(choices) > 0 {
		def.PossibleValues(choices...)
	}

	if tags := flag.Annotations[ValidateAnnotation]; len(tags) > 0 && o.Validator != nil {
		def.Validator(o.Validator(flag.Name, strings.Join(tags, ",")))
	}
}
