package param

import "fmt"

// Marker is a node of the rule graph attached to a descriptor. It is one of
// *Rule, *Composite, or *Structural.
type Marker interface {
	marker()
	fmt.Stringer
}

// Validator is a stateless predicate over a single optional value.
type Validator interface {
	IsValid(v Value) bool
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(v Value) bool

// IsValid calls f(v).
func (f ValidatorFunc) IsValid(v Value) bool {
	return f(v)
}

// Rule is an atomic validation rule. New instantiates the implementation
// each time the rule is evaluated.
type Rule struct {
	Name string
	New  func() (Validator, error)
}

func (*Rule) marker() {}

func (r *Rule) String() string {
	if r == nil {
		return "<nil rule>"
	}
	return r.Name
}

// Composite groups further markers under one name, so that a bundle of rules
// can be attached to many descriptors at once. Composites may nest.
type Composite struct {
	Name    string
	Markers []Marker
}

func (*Composite) marker() {}

func (c *Composite) String() string {
	if c == nil {
		return "<nil composite>"
	}
	return c.Name
}

// Structural markers describe a declaration (documentation, visibility,
// lifetime) and never contribute rules. Resolution does not descend into them.
type Structural struct {
	Name string
}

func (*Structural) marker() {}

func (s *Structural) String() string {
	if s == nil {
		return "<nil structural>"
	}
	return s.Name
}

// NewRule declares an atomic rule backed by a stateless validator.
func NewRule(name string, v Validator) *Rule {
	return &Rule{
		Name: name,
		New:  func() (Validator, error) { return v, nil },
	}
}

// NewComposite declares a named group of markers.
func NewComposite(name string, markers ...Marker) *Composite {
	return &Composite{Name: name, Markers: markers}
}
