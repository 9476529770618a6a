package args

import (
	"io"
	"strings"
)

// Option is a switched argument taking one or more values.
type Option struct {
	base
	switched
	valued
}

var _ Arg = (*Option)(nil)

// NewOption builds an option descriptor from a definition.
// The TakesValue setting is always on for options.
func NewOption(def *Def) *Option {
	opt := &Option{
		base:     def.b.clone(),
		switched: def.s.clone(),
		valued:   def.v.clone(),
	}
	opt.settings.Set(TakesValue)

	return opt
}

func (o *Option) Kind() Kind { return KindOption }
func (o *Option) TakesValue() bool { return true }
func (o *Option) LongestFilter() bool { return true }

// String returns the usage fragment of the option, such as "--output <file>".
func (o *Option) String() string {
	var buf strings.Builder
	o.render(&buf)

	return buf.String()
}

// WriteTo writes the usage fragment of the option to w.
func (o *Option) WriteTo(w io.Writer) (int64, error) {
	return writeString(w, o.render)
}

func (o *Option) render(buf *strings.Builder) {
	o.writeSwitch(buf, o.name)
	buf.WriteByte(' ')

	switch {
	case len(o.valNames) > 0:
		writeLabels(buf, o.valNames.Labels()...)

		// A single named slot accepting repetition is variadic.
		if o.IsSet(Multiple) && len(o.valNames) == 1 {
			buf.WriteString("...")
		}

	case o.numVals > 0:
		labels := make([]string, o.numVals)
		for i := range labels {
			labels[i] = o.name
		}

		writeLabels(buf, labels...)

	default:
		writeLabels(buf, o.name)

		if o.IsSet(Multiple) {
			buf.WriteString("...")
		}
	}
}
