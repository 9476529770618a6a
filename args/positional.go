package args

import (
	"io"
	"strings"
)

// Positional is an argument identified by its position on the command line.
type Positional struct {
	base
	valued
	index int
}

var _ Arg = (*Positional)(nil)

// NewPositional builds a positional descriptor from a definition.
// Switches and aliases of the definition are ignored.
func NewPositional(def *Def) *Positional {
	pos := &Positional{
		base:   def.b.clone(),
		valued: def.v.clone(),
		index:  def.index,
	}
	pos.settings.Set(TakesValue)

	return pos
}

// Index returns the 1-based position of the argument.
func (p *Positional) Index() int { return p.index }

func (p *Positional) Kind() Kind { return KindPositional }
func (p *Positional) HasSwitch() bool { return false }
func (p *Positional) Short() rune { return 0 }
func (p *Positional) Long() string { return "" }
func (p *Positional) Aliases() []string { return nil }
func (p *Positional) TakesValue() bool { return true }
func (p *Positional) LongestFilter() bool { return true }
func (p *Positional) DisplayOrder() int { return p.index }

// String returns the usage fragment of the positional, such as "<files>...".
func (p *Positional) String() string {
	var buf strings.Builder
	p.render(&buf)

	return buf.String()
}

// WriteTo writes the usage fragment of the positional to w.
func (p *Positional) WriteTo(w io.Writer) (int64, error) {
	return writeString(w, p.render)
}

func (p *Positional) render(buf *strings.Builder) {
	if len(p.valNames) > 0 {
		writeLabels(buf, p.valNames.Labels()...)
	} else {
		writeLabels(buf, p.name)
	}

	if p.IsSet(Multiple) && len(p.valNames) <= 1 {
		buf.WriteString("...")
	}
}
