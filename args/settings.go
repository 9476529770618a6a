package args

import "strings"

// Setting is a boolean capability that can be turned on for an argument.
type Setting uint8

const (
	// Required arguments must be present on the command line.
	Required Setting = iota
	// Multiple arguments accept repeated occurrences or values.
	Multiple
	// EmptyValues allows an option to be given an empty value.
	EmptyValues
	// Global arguments are propagated down to subcommands.
	Global
	// Hidden arguments are omitted from help and usage listings.
	Hidden
	// TakesValue is set on every argument that consumes at least one value.
	TakesValue
	// UseValueDelimiter splits a single value token on the value delimiter.
	UseValueDelimiter
	// NextLineHelp asks help writers to put the description on its own line.
	NextLineHelp
	// RequireDelimiter only accepts multiple values packed in one token.
	RequireDelimiter
	// HidePossibleValues omits the closed value set from help output.
	HidePossibleValues
	// AllowLeadingHyphen accepts values starting with a hyphen.
	AllowLeadingHyphen
	// RequireEquals forces the --opt=value form.
	RequireEquals
	// Last marks a positional that can only follow a "--" separator.
	Last
	// HideDefaultValue omits the default value from help output.
	HideDefaultValue

	settingsCount
)

var settingNames = [settingsCount]string{
	Required:           "required",
	Multiple:           "multiple",
	EmptyValues:        "empty-values",
	Global:             "global",
	Hidden:             "hidden",
	TakesValue:         "takes-value",
	UseValueDelimiter:  "use-value-delimiter",
	NextLineHelp:       "next-line-help",
	RequireDelimiter:   "require-delimiter",
	HidePossibleValues: "hide-possible-values",
	AllowLeadingHyphen: "allow-leading-hyphen",
	RequireEquals:      "require-equals",
	Last:               "last",
	HideDefaultValue:   "hide-default-value",
}

// String returns the kebab-case name of the setting.
func (s Setting) String() string {
	if s >= settingsCount {
		return "unknown"
	}

	return settingNames[s]
}

// Settings is a set of Setting values, indexed by the setting itself.
// The zero value is an empty set.
type Settings struct {
	bits uint32
}

// NewSettings returns a set with all given settings turned on.
func NewSettings(settings ...Setting) Settings {
	var set Settings
	for _, s := range settings {
		set.Set(s)
	}

	return set
}

// Set turns a setting on.
func (s *Settings) Set(setting Setting) {
	s.bits |= 1 << setting
}

// Unset turns a setting off.
func (s *Settings) Unset(setting Setting) {
	s.bits &^= 1 << setting
}

// IsSet returns true if the setting is turned on.
func (s Settings) IsSet(setting Setting) bool {
	return s.bits&(1<<setting) != 0
}

// List returns all settings turned on, in declaration order.
func (s Settings) List() []Setting {
	var list []Setting

	for setting := Setting(0); setting < settingsCount; setting++ {
		if s.IsSet(setting) {
			list = append(list, setting)
		}
	}

	return list
}

func (s Settings) String() string {
	names := make([]string, 0, settingsCount)
	for _, setting := range s.List() {
		names = append(names, setting.String())
	}

	return strings.Join(names, ",")
}
