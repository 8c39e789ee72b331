// Package tokenizer turns a parameter registry into command-line options and
// splits raw arguments into recognized options and their values. Tokenizing
// is delegated to spf13/pflag.
package tokenizer

import (
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/aidanlsb/paramz/internal/param"
)

const (
	// requiredAnnotation marks flags whose value must accompany them.
	requiredAnnotation = "paramz_required"

	// absentArg is what pflag hands an optional-argument flag that was
	// given without a value.
	absentArg = "\x00"
)

// Spec is one option as registered with the tokenizer.
type Spec struct {
	Name        string
	Short       string
	Description string
	TakesArg    bool
	OptionalArg bool
	Required    bool
}

// Shorthand reports whether the short key fits pflag's single-character
// shorthand. Longer short keys such as "pa" are handled as aliases.
func (s Spec) Shorthand() bool {
	return len(s.Short) == 1
}

// OptionSet is the immutable set of options built from a registry.
type OptionSet struct {
	name    string
	specs   []Spec
	byName  map[string]Spec
	byShort map[string]Spec
	aliases map[string]string // multi-character short key -> long name
}

// Build registers one option per descriptor that carries option metadata,
// in declaration order. Descriptors without an Option are skipped.
func Build(name string, reg *param.Registry) (*OptionSet, error) {
	if reg == nil {
		return nil, param.Errorf(param.KindConfiguration, "no parameter registry")
	}
	o := &OptionSet{
		name:    name,
		byName:  make(map[string]Spec),
		byShort: make(map[string]Spec),
		aliases: make(map[string]string),
	}
	for _, d := range reg.All() {
		if d.Option == nil {
			continue
		}
		spec := Spec{
			Name:        d.Name,
			Short:       d.Option.Short,
			Description: d.Option.Description,
			TakesArg:    d.Option.TakesArg,
			OptionalArg: d.Option.OptionalArg,
			Required:    d.Option.Required,
		}
		o.specs = append(o.specs, spec)
		o.byName[spec.Name] = spec
		o.byShort[spec.Short] = spec
		if !spec.Shorthand() {
			o.aliases[spec.Short] = spec.Name
		}
	}
	return o, nil
}

// Name returns the application name the option set was built for.
func (o *OptionSet) Name() string {
	return o.name
}

// Specs returns the registered options in declaration order.
func (o *OptionSet) Specs() []Spec {
	out := make([]Spec, len(o.specs))
	copy(out, o.specs)
	return out
}

// Lookup returns the option registered under a long name.
func (o *OptionSet) Lookup(name string) (Spec, bool) {
	s, ok := o.byName[name]
	return s, ok
}

// flagSet builds a fresh pflag set whose values report to rec.
func (o *OptionSet) flagSet(rec *recorder) *pflag.FlagSet {
	fs := pflag.NewFlagSet(o.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.Usage = func() {}
	if len(o.aliases) > 0 {
		fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
			if long, ok := o.aliases[name]; ok {
				return pflag.NormalizedName(long)
			}
			return pflag.NormalizedName(name)
		})
	}

	for _, s := range o.specs {
		shorthand := ""
		if s.Shorthand() {
			shorthand = s.Short
		}
		var flag *pflag.Flag
		if s.TakesArg {
			flag = fs.VarPF(&argValue{name: s.Name, rec: rec}, s.Name, shorthand, s.Description)
			if s.OptionalArg {
				flag.NoOptDefVal = absentArg
			}
		} else {
			flag = fs.VarPF(&switchValue{name: s.Name, rec: rec}, s.Name, shorthand, s.Description)
			flag.NoOptDefVal = "true"
		}
		if s.Required {
			_ = fs.SetAnnotation(s.Name, requiredAnnotation, []string{"true"})
		}
	}
	return fs
}

// rewrite turns single-dash multi-character short keys (-pa, -pa=v) into the
// double-dash form pflag understands. Tokens consumed as flag values and
// everything after "--" are left untouched.
func (o *OptionSet) rewrite(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	if len(o.aliases) == 0 {
		return out
	}

	expectValue := false
	for i, arg := range out {
		if expectValue {
			expectValue = false
			continue
		}
		if arg == "--" {
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

		if strings.HasPrefix(arg, "--") {
			key, _, hasValue := strings.Cut(arg[2:], "=")
			spec, ok := o.byName[key]
			if !ok {
				spec, ok = o.byName[o.aliases[key]]
			}
			expectValue = ok && needsNext(spec, hasValue)
			continue
		}

		body := arg[1:]
		key, _, hasValue := strings.Cut(body, "=")
		if long, ok := o.aliases[key]; ok {
			out[i] = "--" + body
			expectValue = needsNext(o.byName[long], hasValue)
			continue
		}

		// A cluster of single-character shorthands such as -vx; a
		// value-taking shorthand consumes the rest of the token, or the
		// next token when it is last.
		for j := 0; j < len(body); j++ {
			spec, ok := o.byShort[body[j:j+1]]
			if !ok || !spec.Shorthand() {
				break
			}
			if spec.TakesArg {
				expectValue = j == len(body)-1 && !spec.OptionalArg
				break
			}
		}
	}
	return out
}

func needsNext(s Spec, hasValue bool) bool {
	return s.TakesArg && !s.OptionalArg && !hasValue
}
