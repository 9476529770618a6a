// Package opts holds the options shared by the descriptor, tree and completion generators.
package opts

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/reeflective/argtree/internal/validation"
)

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies different generation options.
type Opts struct {
	// Logger receives debug traces of the generators.
	Logger *log.Logger

	// Hidden includes hidden and deprecated commands and flags.
	Hidden bool

	// Validator builds argument validators from validation annotations.
	// Annotations are ignored if nil.
	Validator validation.Func
}

// DefOpts returns the default generation options.
func DefOpts() *Opts {
	return &Opts{
		Logger: log.New(io.Discard),
	}
}

// Apply applies the given options to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		(f)(o)
	}

	return o
}

// Logger sets the logger receiving debug traces.
func Logger(logger *log.Logger) OptFunc {
	return func(opt *Opts) {
		if logger != nil {
			opt.Logger = logger
		}
	}
}

// Hidden includes hidden commands and flags.
func Hidden() OptFunc { return func(opt *Opts) { opt.Hidden = true } }

// Validator sets the validator builder for annotated flags.
func Validator(val validation.Func) OptFunc {
	return func(opt *Opts) { opt.Validator = val }
}
