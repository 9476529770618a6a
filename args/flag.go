package args

import (
	"io"
	"strings"
)

// Flag is a switched argument that takes no value.
type Flag struct {
	base
	switched
}

var _ Arg = (*Flag)(nil)

// NewFlag builds a flag descriptor from a definition.
// Value-related fields of the definition are ignored.
func NewFlag(def *Def) *Flag {
	flag := &Flag{
		base:     def.b.clone(),
		switched: def.s.clone(),
	}
	flag.settings.Unset(TakesValue)

	return flag
}

func (f *Flag) Kind() Kind { return KindFlag }
func (f *Flag) TakesValue() bool { return false }
func (f *Flag) ValueNames() ValueNames { return nil }
func (f *Flag) NumValues() uint { return 0 }
func (f *Flag) MinValues() uint { return 0 }
func (f *Flag) MaxValues() uint { return 0 }
func (f *Flag) PossibleValues() []string { return nil }
func (f *Flag) Validator() Validator { return nil }
func (f *Flag) DefaultValue() (string, bool) { return "", false }
func (f *Flag) ValueDelimiter() rune { return 0 }
func (f *Flag) LongestFilter() bool { return f.long != "" }

// String returns the switch of the flag, such as "--verbose".
func (f *Flag) String() string {
	var buf strings.Builder
	f.writeSwitch(&buf, f.name)

	return buf.String()
}

// WriteTo writes the switch of the flag to w.
func (f *Flag) WriteTo(w io.Writer) (int64, error) {
	return writeString(w, func(buf *strings.Builder) {
		f.writeSwitch(buf, f.name)
	})
}
