// Package param declares command-line parameter descriptors, the validation
// rules attached to them, and the registry that holds a fixed, ordered set of
// descriptors for one application.
package param

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// Option is the flag metadata of a descriptor. A descriptor without an
// Option is kept for bookkeeping and validation but never registered as a
// flag.
type Option struct {
	Short       string // Short key, e.g. "h" for -h or "pa" for -pa
	Description string // Shown in the generated option list
	TakesArg    bool   // Whether the flag accepts a trailing argument
	OptionalArg bool   // Value-taking flag that may also appear without a value
	Required    bool   // A value must accompany the flag when it is present
}

// Descriptor declares one command-line parameter.
type Descriptor struct {
	Name    string // Long flag name and key for values and failures
	Option  *Option
	Action  Action
	Markers []Marker // Validation rules, possibly nested inside composites
}

// ShortKey returns the short key, or "" when the descriptor has no option.
func (d *Descriptor) ShortKey() string {
	if d == nil || d.Option == nil {
		return ""
	}
	return d.Option.Short
}

// TakesArg reports whether the descriptor's flag accepts an argument.
func (d *Descriptor) TakesArg() bool {
	return d != nil && d.Option != nil && d.Option.TakesArg
}

// IsHelp reports whether the descriptor carries the help action.
func (d *Descriptor) IsHelp() bool {
	return d != nil && IsHelp(d.Action)
}

func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}
	return d.Name
}

// NameOf derives a flag name from a declaration identifier, so that a
// parameter declared as PARAM_A is looked up as --param_a.
func NameOf(ident string) string {
	name := goslug.Make(ident)
	if name == "" {
		name = strings.ToLower(strings.TrimSpace(ident))
	}
	return name
}
