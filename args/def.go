package args

// Def is a mutable argument definition, built with chained setters
// and converted into an immutable descriptor with NewOption, NewFlag,
// NewPositional or FromDef. A Def can be reused: descriptors built
// from it do not share its lists.
type Def struct {
	b     base
	s     switched
	v     valued
	index int
}

// New returns an argument definition with the given unique name.
func New(name string) *Def {
	return &Def{
		b: base{name: name},
		s: switched{dispOrder: defaultDisplayOrder},
	}
}

// Help sets the description of the argument.
func (d *Def) Help(help string) *Def {
	d.b.help = help

	return d
}

// Short sets the short switch (-s).
func (d *Def) Short(short rune) *Def {
	d.s.short = short

	return d
}

// Long sets the long switch (--long).
func (d *Def) Long(long string) *Def {
	d.s.long = long

	return d
}

// Alias adds a hidden alias: it can be matched but is never displayed.
func (d *Def) Alias(name string) *Def {
	d.s.aliases = append(d.s.aliases, Alias{Name: name})

	return d
}

// VisibleAlias adds an alias shown in help and completions.
func (d *Def) VisibleAlias(name string) *Def {
	d.s.aliases = append(d.s.aliases, Alias{Name: name, Visible: true})

	return d
}

// Set turns settings on.
func (d *Def) Set(settings ...Setting) *Def {
	for _, setting := range settings {
		d.b.settings.Set(setting)
	}

	return d
}

// Unset turns settings off.
func (d *Def) Unset(settings ...Setting) *Def {
	for _, setting := range settings {
		d.b.settings.Unset(setting)
	}

	return d
}

// Required is a shorthand for turning the Required setting on or off.
func (d *Def) Required(required bool) *Def {
	return d.toggle(Required, required)
}

// Multiple is a shorthand for turning the Multiple setting on or off.
func (d *Def) Multiple(multiple bool) *Def {
	return d.toggle(Multiple, multiple)
}

// TakesValue is a shorthand for turning the TakesValue setting on or off.
func (d *Def) TakesValue(takes bool) *Def {
	return d.toggle(TakesValue, takes)
}

// Requires adds arguments that must be present when this one is.
func (d *Def) Requires(names ...string) *Def {
	d.b.requires = append(d.b.requires, names...)

	return d
}

// Overrides adds arguments that this one overrides when both are present.
func (d *Def) Overrides(names ...string) *Def {
	d.b.overrides = append(d.b.overrides, names...)

	return d
}

// ConflictsWith adds arguments that cannot be used with this one.
func (d *Def) ConflictsWith(names ...string) *Def {
	d.b.blacklist = append(d.b.blacklist, names...)

	return d
}

// RequiredUnless adds arguments whose presence makes this one optional.
func (d *Def) RequiredUnless(names ...string) *Def {
	d.b.requiredUnless = append(d.b.requiredUnless, names...)

	return d
}

// ValueNames sets the display labels of each value slot, in order.
// The argument then takes a value.
func (d *Def) ValueNames(labels ...string) *Def {
	d.v.valNames = NewValueNames(labels...)
	d.b.settings.Set(TakesValue)

	return d
}

// NumValues sets the exact number of values the argument takes.
func (d *Def) NumValues(num uint) *Def {
	d.v.numVals = num
	d.b.settings.Set(TakesValue)

	return d
}

// MinValues sets the minimum number of values.
func (d *Def) MinValues(num uint) *Def {
	d.v.minVals = num
	d.b.settings.Set(TakesValue)

	return d
}

// MaxValues sets the maximum number of values.
func (d *Def) MaxValues(num uint) *Def {
	d.v.maxVals = num
	d.b.settings.Set(TakesValue)

	return d
}

// PossibleValues restricts the argument values to a closed set.
func (d *Def) PossibleValues(values ...string) *Def {
	d.v.possibleVals = append(d.v.possibleVals, values...)
	d.b.settings.Set(TakesValue)

	return d
}

// Validator sets the function checking each value of the argument.
func (d *Def) Validator(validator Validator) *Def {
	d.v.validator = validator
	d.b.settings.Set(TakesValue)

	return d
}

// Default sets the value used when the argument is absent.
func (d *Def) Default(val string) *Def {
	d.v.defaultVal = &val
	d.b.settings.Set(TakesValue)

	return d
}

// ValueDelimiter sets the separator of values packed into one token,
// and turns UseValueDelimiter on.
func (d *Def) ValueDelimiter(delim rune) *Def {
	d.v.valDelim = delim

	return d.Set(TakesValue, UseValueDelimiter)
}

// Index makes the argument a positional one, at the given 1-based index.
func (d *Def) Index(index int) *Def {
	d.index = index

	return d
}

// DisplayOrder sets the sort key used by help listings.
func (d *Def) DisplayOrder(order int) *Def {
	d.s.dispOrder = order

	return d
}

func (d *Def) toggle(setting Setting, on bool) *Def {
	if on {
		d.b.settings.Set(setting)
	} else {
		d.b.settings.Unset(setting)
	}

	return d
}

// FromDef builds the descriptor matching the definition:
// a positional if an index is set, an option if the argument
// takes a value, and a flag otherwise.
func FromDef(def *Def) Arg {
	switch {
	case def.index > 0:
		return NewPositional(def)
	case def.b.settings.IsSet(TakesValue):
		return NewOption(def)
	default:
		return NewFlag(def)
	}
}
