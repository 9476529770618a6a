package args

import (
	"fmt"
	"strings"

	"github.com/reeflective/argtree/internal/errors"
)

const defaultDisplayOrder = 999

// base holds the identity and relations common to all arguments.
type base struct {
	name           string
	help           string
	settings       Settings
	requires       []string
	overrides      []string
	blacklist      []string
	requiredUnless []string
}

func (b base) clone() base {
	b.requires = cloneStrings(b.requires)
	b.overrides = cloneStrings(b.overrides)
	b.blacklist = cloneStrings(b.blacklist)
	b.requiredUnless = cloneStrings(b.requiredUnless)

	return b
}

func (b *base) Name() string { return b.name }
func (b *base) Help() string { return b.help }
func (b *base) IsSet(setting Setting) bool { return b.settings.IsSet(setting) }
func (b *base) Settings() Settings { return b.settings }
func (b *base) Requires() []string { return b.requires }
func (b *base) Overrides() []string { return b.overrides }
func (b *base) Blacklist() []string { return b.blacklist }
func (b *base) RequiredUnless() []string { return b.requiredUnless }

// switched holds the command-line identity of flags and options.
type switched struct {
	short     rune
	long      string
	aliases   []Alias
	dispOrder int
}

func (s switched) clone() switched {
	if s.aliases != nil {
		s.aliases = append([]Alias(nil), s.aliases...)
	}

	return s
}

func (s *switched) HasSwitch() bool { return true }
func (s *switched) Short() rune { return s.short }
func (s *switched) Long() string { return s.long }
func (s *switched) Aliases() []string { return VisibleAliases(s.aliases) }
func (s *switched) DisplayOrder() int { return s.dispOrder }

// writeSwitch writes --long, or -s when no long name is set.
// An argument without any switch is a bug in the code that built it.
func (s *switched) writeSwitch(buf *strings.Builder, name string) {
	switch {
	case s.long != "":
		buf.WriteString("--")
		buf.WriteString(s.long)
	case s.short != 0:
		buf.WriteByte('-')
		buf.WriteRune(s.short)
	default:
		panic(fmt.Errorf("%w: %q", errors.ErrNoSwitch, name))
	}
}

// valued holds the value arity and value constraints of options and positionals.
type valued struct {
	valNames     ValueNames
	numVals      uint
	minVals      uint
	maxVals      uint
	possibleVals []string
	validator    Validator
	defaultVal   *string
	valDelim     rune
}

func (v valued) clone() valued {
	if v.valNames != nil {
		names := make(ValueNames, len(v.valNames))
		for i, label := range v.valNames {
			names[i] = label
		}

		v.valNames = names
	}

	v.possibleVals = cloneStrings(v.possibleVals)

	if v.defaultVal != nil {
		def := *v.defaultVal
		v.defaultVal = &def
	}

	return v
}

func (v *valued) ValueNames() ValueNames { return v.valNames }
func (v *valued) NumValues() uint { return v.numVals }
func (v *valued) MinValues() uint { return v.minVals }
func (v *valued) MaxValues() uint { return v.maxVals }
func (v *valued) PossibleValues() []string { return v.possibleVals }
func (v *valued) Validator() Validator { return v.validator }
func (v *valued) ValueDelimiter() rune { return v.valDelim }

func (v *valued) DefaultValue() (string, bool) {
	if v.defaultVal == nil {
		return "", false
	}

	return *v.defaultVal, true
}

// writeLabels writes <label> tokens separated by single spaces.
func writeLabels(buf *strings.Builder, labels ...string) {
	for i, label := range labels {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteByte('<')
		buf.WriteString(label)
		buf.WriteByte('>')
	}
}

func cloneStrings(list []string) []string {
	if list == nil {
		return nil
	}

	return append([]string(nil), list...)
}
