package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/argtree/args"
)

func TestNewDefault(t *testing.T) {
	t.Parallel()

	build := NewDefault()

	assert.Nil(t, build("email", ""))

	validate := build("email", "email")
	require.NotNil(t, validate)

	require.NoError(t, validate("user@example.com"))

	err := validate("not an email")
	require.Error(t, err)
	assert.Equal(t, "`not an email` is not a valid email", err.Error())

	var fieldErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &fieldErrs)
}

func TestNewWithCustomValidation(t *testing.T) {
	t.Parallel()

	custom := validator.New()
	require.NoError(t, custom.RegisterValidation("shell", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "bash", "fish", "zsh", "powershell":
			return true
		default:
			return false
		}
	}))

	validate := NewWith(custom)("shell", "shell")

	require.NoError(t, validate("zsh"))
	require.EqualError(t, validate("tcsh"), "`tcsh` is not a valid shell")
}

func TestValidatorOnDescriptor(t *testing.T) {
	t.Parallel()

	opt := args.NewOption(args.New("port").Long("port").Validator(NewDefault()("port", "numeric")))

	require.NoError(t, args.Validate(opt, "8080"))
	require.Error(t, args.Validate(opt, "http"))
}
