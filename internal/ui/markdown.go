package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	gstyles "github.com/charmbracelet/glamour/styles"
)

// MarkdownRenderMargin is the left margin used for terminal markdown rendering.
const MarkdownRenderMargin = 2

// defaultCodeTheme is the chroma theme for fenced code in help texts.
const defaultCodeTheme = "monokai"

var markdownCodeTheme = defaultCodeTheme

// ConfigureMarkdownCodeTheme selects the chroma theme for code blocks.
// Unknown themes fall back to the default.
func ConfigureMarkdownCodeTheme(theme string) {
	name := strings.ToLower(strings.TrimSpace(theme))
	if _, ok := styles.Registry[name]; !ok {
		name = defaultCodeTheme
	}
	markdownCodeTheme = name
}

// RenderMarkdown renders markdown content for terminal display using the
// shared help style configuration.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(helpMarkdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single trailing newline.
	rendered = strings.TrimRight(rendered, "\n") + "\n"
	return rendered, nil
}

// helpMarkdownStyle starts from glamour's dark theme and narrows it to what
// help texts use: accent headings without hash prefixes, red inline code,
// muted code blocks highlighted with the configured chroma theme.
func helpMarkdownStyle() ansi.StyleConfig {
	style := gstyles.DarkStyleConfig

	style.Document.BlockPrefix = ""
	style.Document.BlockSuffix = ""
	style.Document.Margin = uintPtr(MarkdownRenderMargin)

	style.Heading.Color = nil
	if color, ok := AccentColor(); ok {
		style.Heading.Color = stringPtr(color)
	}
	style.Heading.Bold = boolPtr(true)
	style.H1 = headingLevel(true)
	style.H2 = headingLevel(true)
	style.H3 = headingLevel(false)

	style.Code.Prefix = "`"
	style.Code.Suffix = "`"
	style.Code.Color = stringPtr("203")
	style.Code.BackgroundColor = nil

	style.CodeBlock.Color = stringPtr("8")
	style.CodeBlock.Margin = uintPtr(MarkdownRenderMargin)
	style.CodeBlock.Chroma = nil
	style.CodeBlock.Theme = markdownCodeTheme

	style.Item.BlockPrefix = "• "
	return style
}

func headingLevel(underline bool) ansi.StyleBlock {
	return ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Underline: boolPtr(underline)}}
}

func boolPtr(v bool) *bool { return &v }

func stringPtr(v string) *string { return &v }

func uintPtr(v uint) *uint { return &v }
