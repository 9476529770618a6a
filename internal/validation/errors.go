package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var tagMatcher = regexp.MustCompile(`the '.*' tag`)

// invalidVarError wraps an error raised by validator on an argument value,
// and rewrites its message into one more adapted to CLI.
type invalidVarError struct {
	argName      string
	argValue     string
	validatorErr error
}

// Error replaces some identifiable validation errors with shorter messages.
func (err *invalidVarError) Error() string {
	matched := tagMatcher.FindString(err.validatorErr.Error())
	if matched != "" {
		parts := strings.Split(matched, " ")
		if len(parts) > 1 {
			return fmt.Sprintf("`%s` is not a valid %s", err.argValue, strings.Trim(parts[1], "'"))
		}
	}

	// Or simply replace the empty key with the argument name.
	return strings.ReplaceAll(err.validatorErr.Error(), "''", fmt.Sprintf("'%s'", err.argName))
}

func (err *invalidVarError) Unwrap() error {
	return err.validatorErr
}
