package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aidanlsb/paramz/internal/param"
	"github.com/aidanlsb/paramz/internal/parser"
)

func TestHelloPrintsValue(t *testing.T) {
	stdout, stderr, err := executeRoot(t, "hello", "-pa", "world")
	if err != nil {
		t.Fatalf("Execute returned error: %v; stderr=%s", err, stderr)
	}
	if stdout != "world\n" {
		t.Fatalf("stdout = %q, want %q", stdout, "world\n")
	}
}

func TestHelloReportsFailedRules(t *testing.T) {
	stdout, stderr, err := executeRoot(t, "hello", "-pa", "")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if stdout != "" {
		t.Fatalf("stdout = %q, want empty", stdout)
	}
	for _, want := range []string{"invalid parameters (1 failure)", "param_a: not-empty"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestHelloGreetingRunsEvenWhenInvalid(t *testing.T) {
	stdout, stderr, err := executeRoot(t, "hello", "-pb")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if stdout != "Hello world\n" {
		t.Fatalf("stdout = %q, want greeting", stdout)
	}
	if !strings.Contains(stderr, "param_a: not-empty") {
		t.Fatalf("stderr missing absent param_a failure:\n%s", stderr)
	}
}

func TestHelloHelp(t *testing.T) {
	for _, args := range [][]string{{"hello", "-h"}, {"hello", "-pa", "x", "--h"}} {
		stdout, stderr, err := executeRoot(t, args...)
		if err != nil {
			t.Fatalf("%v: Execute returned error: %v", args, err)
		}
		if stderr != "" {
			t.Fatalf("%v: stderr = %q, want empty", args, stderr)
		}
		for _, want := range []string{
			"usage: paramz [-h] [-pa <arg>] [-pb]",
			"-pa,--param_a <arg>",
			"Prints a greeting",
		} {
			if !strings.Contains(stdout, want) {
				t.Fatalf("%v: help missing %q:\n%s", args, want, stdout)
			}
		}
		if strings.Contains(stdout, "Hello world") {
			t.Fatalf("%v: actions must not run on help", args)
		}
	}
}

func TestHelloHelpUsesConfiguredTexts(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := "[app]\nname = \"greeter\"\nheader = \"Greets the world.\"\nfooter = \"See the docs.\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	stdout, _, err := executeRootWithConfig(t, cfgPath, "hello", "-h")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	usage := strings.Index(stdout, "usage: greeter")
	header := strings.Index(stdout, "Greets the world.")
	footer := strings.Index(stdout, "See the docs.")
	if usage < 0 || header < usage || footer < header {
		t.Fatalf("help sections out of order:\n%s", stdout)
	}
}

func TestHelloHelpWithoutAppName(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[app]\nname = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	stdout, stderr, err := executeRootWithConfig(t, cfgPath, "hello", "-h")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if !param.IsKind(err, param.KindConfiguration) || !errors.Is(err, parser.ErrHelpRequested) {
		t.Fatalf("err = %v, want configuration error wrapping ErrHelpRequested", err)
	}
	if stdout != "" {
		t.Fatalf("stdout = %q, want no help page", stdout)
	}
	if !strings.Contains(stderr, "application name is required") {
		t.Fatalf("stderr missing diagnostic:\n%s", stderr)
	}
}

func TestHelloUnknownOption(t *testing.T) {
	_, stderr, err := executeRoot(t, "hello", "--bogus")
	if err == nil {
		t.Fatal("expected tokenize error")
	}
	if errors.Is(err, errReported) {
		t.Fatalf("tokenize errors should be reported by Execute, got %v", err)
	}
	if !strings.Contains(stderr, "bogus") {
		t.Fatalf("stderr missing unknown option:\n%s", stderr)
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: param.Errorf(param.KindTokenize, "bad flag"), want: ErrArgsInvalid},
		{err: fmt.Errorf("wrapped: %w", param.Errorf(param.KindResolution, "cycle")), want: ErrValidationError},
		{err: param.Errorf(param.KindConfiguration, "no name"), want: ErrConfigInvalid},
		{err: errors.New("plain"), want: ErrInternal},
	}
	for _, tt := range tests {
		if got := errorCode(tt.err); got != tt.want {
			t.Errorf("errorCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestHelloHonorsGlobalConfigFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "greeter.toml")
	if err := os.WriteFile(cfgPath, []byte("[app]\nname = \"greeter\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	for _, args := range [][]string{
		{"--config", cfgPath, "hello", "-h"},
		{"--config=" + cfgPath, "hello", "-h"},
	} {
		stdout, stderr, err := executeRoot(t, args...)
		if err != nil {
			t.Fatalf("%v: Execute returned error: %v; stderr=%s", args, err, stderr)
		}
		if !strings.Contains(stdout, "usage: greeter [-h]") {
			t.Fatalf("%v: help does not use the --config profile:\n%s", args, stdout)
		}
	}
}

func TestHelloGlobalJSONFlag(t *testing.T) {
	stdout, stderr, err := executeRoot(t, "--json", "hello", "--bogus")
	if err == nil {
		t.Fatal("expected tokenize error")
	}
	if stderr != "" {
		t.Fatalf("stderr = %q, want the error as JSON on stdout", stderr)
	}

	var resp Response
	if err := json.Unmarshal([]byte(stdout), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, stdout)
	}
	if resp.OK || resp.Error == nil || resp.Error.Code != ErrArgsInvalid {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTakeHostFlags(t *testing.T) {
	prevConfig := configPath
	prevJSON := jsonOutput
	t.Cleanup(func() {
		configPath = prevConfig
		jsonOutput = prevJSON
	})

	tests := []struct {
		name       string
		args       []string
		want       []string
		wantConfig string
		wantJSON   bool
	}{
		{name: "none", args: []string{"-pa", "x"}, want: []string{"-pa", "x"}},
		{name: "separate value", args: []string{"--config", "a.toml", "-pb"}, want: []string{"-pb"}, wantConfig: "a.toml"},
		{name: "inline value and switch", args: []string{"--json", "--config=b.yaml"}, want: []string{}, wantConfig: "b.yaml", wantJSON: true},
		{name: "stops at first registry argument", args: []string{"-pa", "--json"}, want: []string{"-pa", "--json"}},
		{name: "stops at unknown long flag", args: []string{"--param_a", "x", "--json"}, want: []string{"--param_a", "x", "--json"}},
		{name: "terminator is kept", args: []string{"--", "--json"}, want: []string{"--", "--json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath, jsonOutput = "", false

			got, err := takeHostFlags(helloCmd, tt.args)
			if err != nil {
				t.Fatalf("takeHostFlags() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("remaining args mismatch (-want +got):\n%s", diff)
			}
			if configPath != tt.wantConfig || jsonOutput != tt.wantJSON {
				t.Fatalf("config=%q json=%v, want config=%q json=%v", configPath, jsonOutput, tt.wantConfig, tt.wantJSON)
			}
		})
	}

	if _, err := takeHostFlags(helloCmd, []string{"--config"}); err == nil {
		t.Fatal("expected an error for --config without a value")
	}
}
