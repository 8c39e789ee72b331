package parser

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/aidanlsb/paramz/internal/param"
)

// Failures maps descriptor names to the rules their values failed, in
// resolution order. Descriptors without failures have no entry.
type Failures map[string][]*param.Rule

// Names returns the failing descriptor names sorted alphabetically.
func (f Failures) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders one "name: rule, rule" line per failing descriptor.
func (f Failures) String() string {
	var b strings.Builder
	for _, name := range f.Names() {
		rules := make([]string, 0, len(f[name]))
		for _, r := range f[name] {
			rules = append(rules, r.String())
		}
		fmt.Fprintf(&b, "%s: %s\n", name, strings.Join(rules, ", "))
	}
	return b.String()
}

// Clone returns a copy of f that shares no slices with it.
func (f Failures) Clone() Failures {
	if f == nil {
		return nil
	}
	out := maps.Clone(f)
	for name, rules := range out {
		out[name] = slices.Clone(rules)
	}
	return out
}

// FailedValidations evaluates the rules of every registered descriptor
// against its raw value. The pass runs once per session and each call
// returns a fresh copy. Any rule that cannot be resolved, instantiated or
// evaluated aborts the whole pass.
func (s *Session) FailedValidations() (Failures, error) {
	if !s.validated {
		s.failures, s.failuresErr = s.validate()
		s.validated = true
	}
	if s.failuresErr != nil {
		return nil, s.failuresErr
	}
	return s.failures.Clone(), nil
}

// ValidParams reports whether no descriptor failed validation.
func (s *Session) ValidParams() (bool, error) {
	failures, err := s.FailedValidations()
	if err != nil {
		return false, err
	}
	return len(failures) == 0, nil
}

func (s *Session) validate() (Failures, error) {
	res, err := s.result()
	if err != nil {
		return nil, err
	}

	failures := make(Failures)
	for _, d := range s.reg.All() {
		rules, err := param.Resolve(d)
		if err != nil {
			return nil, computing(err)
		}
		value := res.Value(d.Name)
		for _, rule := range rules {
			ok, err := evaluate(rule, value)
			if err != nil {
				return nil, computing(&param.Error{
					Kind:  param.KindResolution,
					Param: d.Name,
					Msg:   fmt.Sprintf("rule %s", rule),
					Err:   err,
				})
			}
			if !ok {
				failures[d.Name] = append(failures[d.Name], rule)
			}
		}
	}
	s.logger.Debug("validation complete", "failed", len(failures))
	return failures, nil
}

// evaluate instantiates rule and checks value, turning a panicking
// validator into an error.
func evaluate(rule *param.Rule, value param.Value) (ok bool, err error) {
	v, err := rule.New()
	if err != nil {
		return false, err
	}
	if v == nil {
		return false, fmt.Errorf("no validator")
	}
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("validator panicked: %v", r)
		}
	}()
	return v.IsValid(value), nil
}

func computing(err error) error {
	return param.Wrap(param.KindResolution, err, "error computing validations")
}
