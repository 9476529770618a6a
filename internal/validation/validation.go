// Package validation builds argument validators from go-playground/validator tags.
package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/reeflective/argtree/args"
)

// Func builds the validator of an argument from a validation tag,
// such as "email" or "min=1,max=10". It returns nil if the tag is empty.
type Func func(name, tag string) args.Validator

// NewDefault returns a validator builder using a default go-playground validator.
func NewDefault() Func {
	return NewWith(validator.New())
}

// NewWith returns a validator builder using the given go-playground validator,
// which can carry custom validations registered by the caller.
func NewWith(validate *validator.Validate) Func {
	if validate == nil {
		validate = validator.New()
	}

	return func(name, tag string) args.Validator {
		if tag == "" {
			return nil
		}

		return func(val string) error {
			if err := validate.Var(val, tag); err != nil {
				return &invalidVarError{
					argName:      name,
					argValue:     val,
					validatorErr: err,
				}
			}

			return nil
		}
	}
}
