package parser

import (
	"maps"

	"github.com/aidanlsb/paramz/internal/param"
	"github.com/aidanlsb/paramz/internal/ui"
)

// Values runs the action of every option present in the arguments and
// returns the results of value-taking options keyed by name. Actions run in
// the order options appear, once per session; later calls return a copy of
// the same results. A repeated option keeps the value of its last
// occurrence and its action runs once.
//
// Options without argument run for their side effects only and have no
// entry. A required option given without a value is reported on the error
// output together with the help page; its action still runs with an absent
// value and resolution continues.
func (s *Session) Values() (map[string]any, error) {
	if !s.resolved {
		s.values, s.valuesErr = s.resolveValues()
		s.resolved = true
	}
	if s.valuesErr != nil {
		return nil, s.valuesErr
	}
	return maps.Clone(s.values), nil
}

func (s *Session) resolveValues() (map[string]any, error) {
	res, err := s.result()
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	for _, entry := range res.Present() {
		d, ok := s.reg.Lookup(entry.Name)
		if !ok {
			continue
		}
		if !d.TakesArg() {
			d.Action.Execute(param.Absent)
			s.logger.Debug("action executed", "param", d.Name)
			continue
		}
		if entry.Value.IsAbsent() && entry.Required {
			s.reportMissing(d)
		}
		values[d.Name] = d.Action.Execute(entry.Value)
		s.logger.Debug("value resolved", "param", d.Name)
	}
	return values, nil
}

func (s *Session) reportMissing(d *param.Descriptor) {
	s.missing = append(s.missing, d)
	ui.Warn(s.errOut, "required field missing: "+d.Name)
	s.logger.Debug("required value missing", "param", d.Name)
	// A failure here was already reported on the error output.
	_ = s.renderHelp()
}

// Value returns the action result stored for the named descriptor, or nil
// when it has none.
func (s *Session) Value(name string) (any, error) {
	values, err := s.Values()
	if err != nil {
		return nil, err
	}
	return values[name], nil
}

// ValueOf is Value for a descriptor.
func (s *Session) ValueOf(d *param.Descriptor) (any, error) {
	if d == nil {
		return nil, nil
	}
	return s.Value(d.Name)
}

// MissingRequired lists the required options that were given without a
// value, in the order they were found.
func (s *Session) MissingRequired() ([]*param.Descriptor, error) {
	if _, err := s.Values(); err != nil {
		return nil, err
	}
	return append([]*param.Descriptor(nil), s.missing...), nil
}
