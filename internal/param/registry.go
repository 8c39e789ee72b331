package param

import "strings"

// Registry is the fixed, ordered set of descriptors of one application.
// It is read-only once built.
type Registry struct {
	descs  []*Descriptor
	byName map[string]*Descriptor
}

// NewRegistry validates descs and returns them as a registry, keeping the
// declaration order. Names must be unique and non-empty, short keys unique,
// and no short key may shadow another descriptor's name. A help descriptor
// must carry an option.
func NewRegistry(descs ...*Descriptor) (*Registry, error) {
	reg := &Registry{
		descs:  make([]*Descriptor, 0, len(descs)),
		byName: make(map[string]*Descriptor, len(descs)),
	}
	shorts := make(map[string]string)

	for i, d := range descs {
		if d == nil {
			return nil, Errorf(KindConfiguration, "descriptor %d is nil", i)
		}
		if strings.TrimSpace(d.Name) == "" {
			return nil, Errorf(KindConfiguration, "descriptor %d has an empty name", i)
		}
		if strings.HasPrefix(d.Name, "-") || strings.ContainsAny(d.Name, " =") {
			return nil, invalid(d, "name must not start with '-' or contain spaces or '='")
		}
		if _, dup := reg.byName[d.Name]; dup {
			return nil, invalid(d, "duplicate name")
		}
		if d.Action == nil {
			return nil, invalid(d, "missing action")
		}
		if IsHelp(d.Action) && d.Option == nil {
			return nil, invalid(d, "help action needs an option to be reachable")
		}
		if opt := d.Option; opt != nil {
			if strings.TrimSpace(opt.Short) == "" {
				return nil, invalid(d, "option has an empty short key")
			}
			if strings.HasPrefix(opt.Short, "-") || strings.ContainsAny(opt.Short, " =") {
				return nil, invalid(d, "short key must not start with '-' or contain spaces or '='")
			}
			if other, dup := shorts[opt.Short]; dup {
				return nil, invalid(d, "short key -"+opt.Short+" already used by "+other)
			}
			if opt.OptionalArg && !opt.TakesArg {
				return nil, invalid(d, "optional argument on a flag that takes no argument")
			}
			if IsHelp(d.Action) && opt.TakesArg {
				return nil, invalid(d, "help flag cannot take an argument")
			}
			shorts[opt.Short] = d.Name
		}
		reg.descs = append(reg.descs, d)
		reg.byName[d.Name] = d
	}

	// A short key equal to some other descriptor's name would make -x and
	// --x mean different things.
	for short, owner := range shorts {
		if d, ok := reg.byName[short]; ok && d.Name != owner {
			return nil, invalid(d, "name collides with the short key of "+owner)
		}
	}

	return reg, nil
}

func invalid(d *Descriptor, msg string) *Error {
	e := Errorf(KindConfiguration, "%s", msg)
	e.Param = d.Name
	return e
}

// MustRegistry is like NewRegistry but panics on error. Intended for
// package-level declarations.
func MustRegistry(descs ...*Descriptor) *Registry {
	reg, err := NewRegistry(descs...)
	if err != nil {
		panic(err)
	}
	return reg
}

// All returns the descriptors in declaration order.
func (r *Registry) All() []*Descriptor {
	out := make([]*Descriptor, len(r.descs))
	copy(out, r.descs)
	return out
}

// Len returns the number of descriptors.
func (r *Registry) Len() int {
	return len(r.descs)
}

// Lookup returns the descriptor with the given name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Help returns the first descriptor carrying the help action, if any.
func (r *Registry) Help() (*Descriptor, bool) {
	for _, d := range r.descs {
		if d.IsHelp() {
			return d, true
		}
	}
	return nil, false
}
