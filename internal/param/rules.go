package param

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Structural markers. They may appear anywhere in a rule graph and are skipped.
var (
	Doc        = &Structural{Name: "doc"}
	Visibility = &Structural{Name: "visibility"}
	Lifetime   = &Structural{Name: "lifetime"}
)

var (
	// NotNull fails when no value was supplied.
	NotNull = NewRule("not-null", ValidatorFunc(func(v Value) bool {
		return !v.IsAbsent()
	}))

	// NotEmpty fails when no value was supplied or the value is "".
	NotEmpty = NewRule("not-empty", ValidatorFunc(func(v Value) bool {
		s, ok := v.Get()
		return ok && s != ""
	}))

	// Mandatory bundles NotNull and NotEmpty.
	Mandatory = NewComposite("mandatory", Doc, NotNull, NotEmpty)
)

// Matches declares a rule that passes when the value is absent or matches
// pattern. The pattern is compiled when the rule is instantiated, so a bad
// pattern surfaces as a validation error rather than a panic at declaration.
func Matches(pattern string) *Rule {
	return &Rule{
		Name: fmt.Sprintf("matches(%s)", pattern),
		New: func() (Validator, error) {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, err
			}
			return ValidatorFunc(func(v Value) bool {
				s, ok := v.Get()
				return !ok || re.MatchString(s)
			}), nil
		},
	}
}

// OneOf declares a rule that passes when the value is absent or equals one
// of allowed.
func OneOf(allowed ...string) *Rule {
	allowed = slices.Clone(allowed)
	return NewRule(
		fmt.Sprintf("one-of(%s)", strings.Join(allowed, "|")),
		ValidatorFunc(func(v Value) bool {
			s, ok := v.Get()
			return !ok || slices.Contains(allowed, s)
		}),
	)
}

// MaxLen declares a rule that passes when the value is absent or at most n
// characters long.
func MaxLen(n int) *Rule {
	return &Rule{
		Name: fmt.Sprintf("max-len(%d)", n),
		New: func() (Validator, error) {
			if n < 0 {
				return nil, fmt.Errorf("max-len: negative limit %d", n)
			}
			return ValidatorFunc(func(v Value) bool {
				s, ok := v.Get()
				return !ok || utf8.RuneCountInString(s) <= n
			}), nil
		},
	}
}
