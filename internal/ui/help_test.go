package ui

import (
	"bytes"
	"strings"
	"testing"
)

func fixturePage() HelpPage {
	return HelpPage{
		AppName: "MyApp",
		Header:  "Header text",
		Footer:  "Footer text",
		Options: []HelpOption{
			{Short: "h", Long: "help"},
			{Short: "pa", Long: "param_a", TakesArg: true},
			{Short: "pb", Long: "param_b", Description: "Prints a greeting"},
		},
	}
}

func TestRenderHelpPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	d := &DisplayContext{TermWidth: 80}
	if err := RenderHelp(&buf, fixturePage(), d); err != nil {
		t.Fatalf("RenderHelp() error = %v", err)
	}
	out := buf.String()

	want := []string{
		"usage: MyApp [-h] [-pa <arg>] [-pb]\n",
		"Header text\n",
		" -h,--help\n",
		" -pa,--param_a <arg>\n",
		" -pb,--param_b         Prints a greeting\n",
		"Footer text\n",
	}
	last := -1
	for _, part := range want {
		i := strings.Index(out, part)
		if i < 0 {
			t.Fatalf("expected %q in help output:\n%s", part, out)
		}
		if i < last {
			t.Fatalf("%q is out of order in help output:\n%s", part, out)
		}
		last = i
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI sequences for a non-terminal writer, got %q", out)
	}
}

func TestRenderHelpMarksRequiredAndOptionalArguments(t *testing.T) {
	page := HelpPage{
		AppName: "app",
		Options: []HelpOption{
			{Short: "o", Long: "output", TakesArg: true, Required: true, Description: "Output file"},
			{Short: "c", Long: "color", TakesArg: true, OptionalArg: true},
		},
	}
	var buf bytes.Buffer
	if err := RenderHelp(&buf, page, &DisplayContext{TermWidth: 80}); err != nil {
		t.Fatalf("RenderHelp() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "usage: app [-o <arg>] [-c [<arg>]]") {
		t.Fatalf("unexpected usage line:\n%s", out)
	}
	if !strings.Contains(out, "Output file (value required)") {
		t.Fatalf("expected required marker:\n%s", out)
	}
	if !strings.Contains(out, "-c,--color [<arg>]") {
		t.Fatalf("expected optional argument placeholder:\n%s", out)
	}
}

func TestRenderHelpFlattensMarkdownForNonTerminals(t *testing.T) {
	page := HelpPage{
		AppName:  "app",
		Header:   "# Greeter\n\nSays **hello**.",
		Markdown: true,
	}
	var buf bytes.Buffer
	if err := RenderHelp(&buf, page, &DisplayContext{TermWidth: 80}); err != nil {
		t.Fatalf("RenderHelp() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Greeter\n\nSays hello.\n") {
		t.Fatalf("expected flattened markdown header, got:\n%s", out)
	}
	if strings.Contains(out, "**") || strings.Contains(out, "# ") {
		t.Fatalf("markdown syntax leaked into plain output:\n%s", out)
	}
}

func TestUsageLine(t *testing.T) {
	if got := UsageLine(fixturePage()); got != "usage: MyApp [-h] [-pa <arg>] [-pb]" {
		t.Fatalf("UsageLine() = %q", got)
	}
}

func TestTableWrapsLastColumn(t *testing.T) {
	table := NewTable(2)
	table.SetMaxWidth(30)
	table.AddRow("-x", "one two three four five six seven eight")
	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped output, got %q", out)
	}
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, "    ") {
			t.Fatalf("continuation line %q is not aligned", line)
		}
	}
	for _, line := range lines {
		if len(line) > 30 {
			t.Fatalf("line %q exceeds max width", line)
		}
	}
}

func TestList(t *testing.T) {
	l := NewList()
	l.Add("param_a: not-empty")
	if got := l.String(); got != "  • param_a: not-empty\n" {
		t.Fatalf("String() = %q", got)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d", l.Len())
	}
}

func TestPlainMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "soft breaks join", in: "Hello\nworld", want: "Hello world"},
		{name: "heading and paragraph", in: "# Title\n\nBody", want: "Title\n\nBody"},
		{name: "list", in: "- one\n- two", want: "- one\n- two"},
		{name: "link keeps destination", in: "[docs](https://example.com)", want: "docs (https://example.com)"},
		{name: "code block indented", in: "```\nrun\n```", want: "    run"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainMarkdown(tt.in); got != tt.want {
				t.Fatalf("PlainMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDiagnosticsWithoutColor(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *bytes.Buffer)
		want  string
	}{
		{
			name:  "error",
			write: func(w *bytes.Buffer) { Diagnose(w, "unknown flag: --bogus") },
			want:  "✗ unknown flag: --bogus\n",
		},
		{
			name:  "warning",
			write: func(w *bytes.Buffer) { Warn(w, "required field missing: param_a") },
			want:  "⚠ required field missing: param_a\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(&buf)
			if got := buf.String(); got != tt.want {
				t.Fatalf("wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayContextForBuffer(t *testing.T) {
	d := NewDisplayContextFor(&bytes.Buffer{})
	if d.IsTTY {
		t.Fatal("a buffer is not a terminal")
	}
	if d.TermWidth != DefaultTermWidth {
		t.Fatalf("TermWidth = %d", d.TermWidth)
	}
}
