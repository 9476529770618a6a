package errors

import "errors"

var (
	// ErrNoSwitch indicates that a switched argument has neither
	// a short nor a long name. This is a construction-time bug.
	ErrNoSwitch = errors.New("argument has no short or long switch")

	// ErrMalformedTree indicates that a command node below the root
	// has no full invocation path.
	ErrMalformedTree = errors.New("command node has no bin name")

	// ErrInvalidChoice indicates that the provided argument value is not among the valid choices.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInvalidValue wraps validation failures reported by an argument validator.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNilObject indicates that an object is nil although it should not.
	ErrNilObject = errors.New("object cannot be nil")

	// ErrUnknownFlag indicates that an annotated flag is not declared by the command.
	ErrUnknownFlag = errors.New("unknown flag")
)
