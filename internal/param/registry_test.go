package param

import "testing"

func TestNewRegistryKeepsOrder(t *testing.T) {
	help := &Descriptor{Name: "help", Option: &Option{Short: "h"}, Action: Help}
	a := &Descriptor{Name: "param_a", Option: &Option{Short: "pa", TakesArg: true}, Action: Echo}
	internal := &Descriptor{Name: "internal", Action: Echo}

	reg, err := NewRegistry(help, a, internal)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	all := reg.All()
	if len(all) != 3 || all[0] != help || all[1] != a || all[2] != internal {
		t.Fatalf("All() = %v", all)
	}
	if reg.Len() != 3 {
		t.Fatalf("Len() = %d", reg.Len())
	}
	if d, ok := reg.Lookup("param_a"); !ok || d != a {
		t.Fatalf("Lookup(param_a) = %v, %v", d, ok)
	}
	if _, ok := reg.Lookup("PARAM_A"); ok {
		t.Fatal("lookup is case sensitive")
	}
	if d, ok := reg.Help(); !ok || d != help {
		t.Fatalf("Help() = %v, %v", d, ok)
	}

	// All returns a copy.
	all[0] = nil
	if reg.All()[0] != help {
		t.Fatal("mutating All() result changed the registry")
	}
}

func TestNewRegistryRejects(t *testing.T) {
	tests := []struct {
		name  string
		descs []*Descriptor
	}{
		{"nil descriptor", []*Descriptor{nil}},
		{"empty name", []*Descriptor{{Name: " ", Action: Echo}}},
		{"dashed name", []*Descriptor{{Name: "-x", Action: Echo}}},
		{"missing action", []*Descriptor{{Name: "a"}}},
		{"duplicate name", []*Descriptor{{Name: "a", Action: Echo}, {Name: "a", Action: Echo}}},
		{"empty short key", []*Descriptor{{Name: "a", Option: &Option{}, Action: Echo}}},
		{"duplicate short key", []*Descriptor{
			{Name: "a", Option: &Option{Short: "x"}, Action: Echo},
			{Name: "b", Option: &Option{Short: "x"}, Action: Echo},
		}},
		{"short key shadows name", []*Descriptor{
			{Name: "a", Option: &Option{Short: "b"}, Action: Echo},
			{Name: "b", Option: &Option{Short: "bb"}, Action: Echo},
		}},
		{"optional arg without arg", []*Descriptor{{Name: "a", Option: &Option{Short: "a", OptionalArg: true}, Action: Echo}}},
		{"help without option", []*Descriptor{{Name: "help", Action: Help}}},
		{"help with arg", []*Descriptor{{Name: "help", Option: &Option{Short: "h", TakesArg: true}, Action: Help}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.descs...)
			if !IsKind(err, KindConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestShortKeyMayEqualOwnName(t *testing.T) {
	if _, err := NewRegistry(&Descriptor{Name: "v", Option: &Option{Short: "v"}, Action: Echo}); err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
}

func TestMustRegistryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustRegistry(&Descriptor{Name: ""})
}

func TestNameOf(t *testing.T) {
	tests := map[string]string{
		"PARAM_A": "param_a",
		"HELP":    "help",
		"Verbose": "verbose",
	}
	for in, want := range tests {
		if got := NameOf(in); got != want {
			t.Errorf("NameOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestErrorFormatting(t *testing.T) {
	e := &Error{Kind: KindTokenize, Param: "param_a", Msg: "bad input"}
	if got := e.Error(); got != `tokenize: bad input (parameter "param_a")` {
		t.Fatalf("Error() = %q", got)
	}
	wrapped := Wrap(KindResolution, errTest, "computing validations")
	if got := wrapped.Error(); got != "resolution: computing validations: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if wrapped.Unwrap() != errTest {
		t.Fatal("Unwrap() lost the cause")
	}
	if KindConfiguration.Code() != "CONFIG_INVALID" {
		t.Fatalf("Code() = %q", KindConfiguration.Code())
	}
}

type testErr string

func (e testErr) Error() string { return string(e) }

var errTest = testErr("boom")
