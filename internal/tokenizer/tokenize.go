package tokenizer

import (
	"errors"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/aidanlsb/paramz/internal/param"
)

// Entry is one option found in the raw arguments.
type Entry struct {
	Name     string
	Short    string
	TakesArg bool
	Required bool
	Value    param.Value
}

// Result is the outcome of tokenizing one argument list.
type Result struct {
	entries []Entry
	byName  map[string]int
	args    []string
}

// Tokenize parses args against the option set. Options are reported in the
// order they first appear; a repeated option keeps its last value.
func (o *OptionSet) Tokenize(args []string) (*Result, error) {
	rec := &recorder{values: make(map[string]param.Value)}
	fs := o.flagSet(rec)

	if err := fs.Parse(o.rewrite(args)); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			err = errors.New("unknown flag: help")
		}
		return nil, param.Wrap(param.KindTokenize, err, "processing command line arguments")
	}

	res := &Result{
		entries: make([]Entry, 0, len(rec.order)),
		byName:  make(map[string]int, len(rec.order)),
		args:    fs.Args(),
	}
	for _, name := range rec.order {
		spec := o.byName[name]
		required := false
		if flag := fs.Lookup(name); flag != nil {
			required = len(flag.Annotations[requiredAnnotation]) > 0
		}
		res.byName[name] = len(res.entries)
		res.entries = append(res.entries, Entry{
			Name:     name,
			Short:    spec.Short,
			TakesArg: spec.TakesArg,
			Required: required,
			Value:    rec.values[name],
		})
	}
	return res, nil
}

// Present returns the options found, in order of first appearance.
func (r *Result) Present() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Has reports whether the named option was given.
func (r *Result) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Value returns the value supplied for the named option. Options that were
// not given, were given without a value, or take no argument yield Absent.
func (r *Result) Value(name string) param.Value {
	i, ok := r.byName[name]
	if !ok {
		return param.Absent
	}
	return r.entries[i].Value
}

// Args returns the arguments that were not consumed as options.
func (r *Result) Args() []string {
	out := make([]string, len(r.args))
	copy(out, r.args)
	return out
}

type recorder struct {
	order  []string
	values map[string]param.Value
}

func (r *recorder) record(name string, v param.Value) {
	if _, seen := r.values[name]; !seen {
		r.order = append(r.order, name)
	}
	r.values[name] = v
}

// argValue is the pflag.Value of a value-taking option.
type argValue struct {
	name  string
	rec   *recorder
	value string
}

func (v *argValue) Set(s string) error {
	if s == absentArg {
		v.value = ""
		v.rec.record(v.name, param.Absent)
		return nil
	}
	v.value = s
	v.rec.record(v.name, param.Some(s))
	return nil
}

func (v *argValue) String() string { return v.value }

func (v *argValue) Type() string { return "string" }

// switchValue is the pflag.Value of an option without argument. Its
// presence is recorded; the option never carries a value.
type switchValue struct {
	name string
	rec  *recorder
	on   bool
}

func (v *switchValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	v.on = on
	if on {
		v.rec.record(v.name, param.Absent)
	}
	return nil
}

func (v *switchValue) String() string { return strconv.FormatBool(v.on) }

func (v *switchValue) Type() string { return "bool" }
