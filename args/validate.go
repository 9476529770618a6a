package args

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/reeflective/argtree/internal/errors"
)

// Validate checks a raw value token against the possible values and the
// validator of an argument. When the argument uses a value delimiter,
// each packed value is checked on its own.
func Validate(arg Arg, token string) error {
	values := []string{token}
	if delim := arg.ValueDelimiter(); delim != 0 && arg.IsSet(UseValueDelimiter) {
		values = strings.Split(token, string(delim))
	}

	for _, val := range values {
		if err := validateOne(arg, val); err != nil {
			return err
		}
	}

	return nil
}

func validateOne(arg Arg, val string) error {
	if choices := arg.PossibleValues(); len(choices) > 0 && !slices.Contains(choices, val) {
		return fmt.Errorf("%w: `%s` for %s (valid values: %s)",
			errors.ErrInvalidChoice, val, arg.Name(), strings.Join(choices, ", "))
	}

	validator := arg.Validator()
	if validator == nil {
		return nil
	}

	if err := validator(val); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidValue, err)
	}

	return nil
}
