package param

// Resolve returns every validation rule reachable from d's markers, walking
// composites depth-first in declaration order. Structural markers are
// skipped. A rule reached through several composites is returned once per
// path.
func Resolve(d *Descriptor) ([]*Rule, error) {
	if d == nil {
		return nil, Errorf(KindResolution, "nil descriptor")
	}
	rules := []*Rule{}
	r := resolver{desc: d, onPath: make(map[*Composite]bool)}
	if err := r.walk(&rules, d.Markers); err != nil {
		return nil, err
	}
	return rules, nil
}

type resolver struct {
	desc *Descriptor
	// onPath holds the composites currently being expanded, so a composite
	// that contains itself is reported instead of recursing forever. Sharing
	// a composite between sibling paths is fine.
	onPath map[*Composite]bool
}

func (r *resolver) walk(rules *[]*Rule, markers []Marker) error {
	for i, m := range markers {
		switch m := m.(type) {
		case *Rule:
			if m == nil || m.New == nil {
				return r.fail("rule %d (%s) has no implementation", i, m)
			}
			*rules = append(*rules, m)
		case *Composite:
			if m == nil {
				return r.fail("marker %d is a nil composite", i)
			}
			if r.onPath[m] {
				return r.fail("composite %q contains itself", m.Name)
			}
			r.onPath[m] = true
			if err := r.walk(rules, m.Markers); err != nil {
				return err
			}
			delete(r.onPath, m)
		case *Structural:
			// documentation only
		case nil:
			return r.fail("marker %d is nil", i)
		default:
			return r.fail("marker %d has unsupported type %T", i, m)
		}
	}
	return nil
}

func (r *resolver) fail(format string, args ...any) error {
	e := Errorf(KindResolution, "resolving validations: "+format, args...)
	e.Param = r.desc.Name
	return e
}
