// Package args provides the descriptors of command-line arguments: options
// taking values, boolean flags and positional arguments.
//
// Descriptors are built once from a Def (see New), and are read-only afterwards.
// Formatting, help and completion code should only depend on the Arg interface,
// never on the concrete variant.
package args

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// Kind identifies the variant of an argument descriptor.
type Kind int

const (
	// KindFlag is a switch that takes no value (--verbose).
	KindFlag Kind = iota
	// KindOption is a switch taking one or more values (--output <file>).
	KindOption
	// KindPositional is an argument identified by its position.
	KindPositional
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindOption:
		return "option"
	case KindPositional:
		return "positional"
	default:
		return "unknown"
	}
}

// Validator checks a single candidate value for an argument.
// It returns nil if the value is acceptable, or an error explaining why not.
type Validator func(val string) error

// Alias is an alternate name for an argument or a command. Hidden aliases
// (Visible is false) are still matched by parsers, but never displayed.
type Alias struct {
	Name    string
	Visible bool
}

// VisibleAliases returns the names of the visible aliases, in order.
// It returns nil if there are no visible aliases.
func VisibleAliases(aliases []Alias) []string {
	var names []string

	for _, alias := range aliases {
		if alias.Visible {
			names = append(names, alias.Name)
		}
	}

	return names
}

// ValueNames maps the index of a value slot to its display label.
type ValueNames map[int]string

// NewValueNames returns value names indexed in the order of the labels.
func NewValueNames(labels ...string) ValueNames {
	names := make(ValueNames, len(labels))
	for i, label := range labels {
		names[i] = label
	}

	return names
}

// Labels returns the labels sorted by slot index.
func (v ValueNames) Labels() []string {
	if len(v) == 0 {
		return nil
	}

	indexes := make([]int, 0, len(v))
	for i := range v {
		indexes = append(indexes, i)
	}

	slices.Sort(indexes)

	labels := make([]string, len(indexes))
	for i, index := range indexes {
		labels[i] = v[index]
	}

	return labels
}

// Arg is the query surface shared by all argument variants.
//
// Numeric value counts use zero for "unset", runes use zero for "no short
// switch" or "no delimiter", and strings use the empty string for "no long switch".
type Arg interface {
	fmt.Stringer
	io.WriterTo

	Name() string
	Kind() Kind
	Help() string

	IsSet(setting Setting) bool
	Settings() Settings

	Requires() []string
	Overrides() []string
	Blacklist() []string
	RequiredUnless() []string

	HasSwitch() bool
	Short() rune
	Long() string
	Aliases() []string

	TakesValue() bool
	ValueNames() ValueNames
	NumValues() uint
	MinValues() uint
	MaxValues() uint
	PossibleValues() []string
	Validator() Validator
	DefaultValue() (string, bool)
	ValueDelimiter() rune

	LongestFilter() bool
	DisplayOrder() int
}

// WriteUsage writes the usage fragment of an argument to w.
// Write errors are returned unchanged.
func WriteUsage(w io.Writer, arg Arg) error {
	_, err := arg.WriteTo(w)

	return err
}

// writeString streams a rendered usage fragment to w.
func writeString(w io.Writer, render func(buf *strings.Builder)) (int64, error) {
	var buf strings.Builder
	render(&buf)

	n, err := io.WriteString(w, buf.String())

	return int64(n), err
}
