package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// HelpOption is one row of the generated option list.
type HelpOption struct {
	Short       string
	Long        string
	TakesArg    bool
	OptionalArg bool
	Required    bool
	Description string
}

// HelpPage is everything shown by RenderHelp.
type HelpPage struct {
	AppName  string
	Header   string
	Footer   string
	Options  []HelpOption
	Markdown bool // render Header and Footer as markdown
}

// helpStyles are bound to the renderer of the target writer, so colors
// only appear when that writer supports them.
type helpStyles struct {
	app   lipgloss.Style
	label lipgloss.Style
	key   lipgloss.Style
	muted lipgloss.Style
}

func newHelpStyles(w io.Writer) helpStyles {
	r := lipgloss.NewRenderer(w)
	key := accentStyle(r)
	return helpStyles{
		app:   key.Bold(true),
		label: r.NewStyle().Bold(true),
		key:   key,
		muted: r.NewStyle().Foreground(mutedColor),
	}
}

// RenderHelp writes the usage line, header, option list and footer to w.
func RenderHelp(w io.Writer, page HelpPage, d *DisplayContext) error {
	if d == nil {
		d = NewDisplayContextFor(w)
	}
	st := newHelpStyles(w)
	width := d.TermWidth

	var b strings.Builder
	b.WriteString(usageLine(st, page, width))
	b.WriteString("\n")

	if header := strings.TrimSpace(page.Header); header != "" {
		text, err := helpText(header, page.Markdown, d)
		if err != nil {
			return fmt.Errorf("render help header: %w", err)
		}
		b.WriteString(text)
	}

	table := NewTable(2)
	table.SetIndent(" ")
	table.SetPadding(3)
	table.SetMaxWidth(width)
	for _, opt := range page.Options {
		desc := opt.Description
		if opt.Required {
			desc = strings.TrimSpace(desc + " " + st.muted.Render("(value required)"))
		}
		table.AddRow(optionKeys(st, opt), desc)
	}
	b.WriteString(table.String())

	if footer := strings.TrimSpace(page.Footer); footer != "" {
		text, err := helpText(footer, page.Markdown, d)
		if err != nil {
			return fmt.Errorf("render help footer: %w", err)
		}
		b.WriteString(text)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// UsageLine returns the unstyled one-line synopsis, e.g.
// "usage: app [-h] [-pa <arg>]".
func UsageLine(page HelpPage) string {
	parts := []string{"usage: " + page.AppName}
	for _, opt := range page.Options {
		parts = append(parts, synopsis(opt))
	}
	return strings.Join(parts, " ")
}

func usageLine(st helpStyles, page HelpPage, width int) string {
	parts := []string{st.label.Render("usage:"), st.app.Render(page.AppName)}
	for _, opt := range page.Options {
		parts = append(parts, synopsis(opt))
	}
	line := strings.Join(parts, " ")
	if width > 0 && lipgloss.Width(line) > width {
		line = wordwrap.String(line, width)
	}
	return line
}

func synopsis(opt HelpOption) string {
	switch {
	case !opt.TakesArg:
		return fmt.Sprintf("[-%s]", opt.Short)
	case opt.OptionalArg:
		return fmt.Sprintf("[-%s [<arg>]]", opt.Short)
	default:
		return fmt.Sprintf("[-%s <arg>]", opt.Short)
	}
}

func optionKeys(st helpStyles, opt HelpOption) string {
	keys := st.key.Render("-" + opt.Short)
	if opt.Long != "" && opt.Long != opt.Short {
		keys += "," + st.key.Render("--"+opt.Long)
	}
	switch {
	case !opt.TakesArg:
	case opt.OptionalArg:
		keys += " " + st.muted.Render("[<arg>]")
	default:
		keys += " " + st.muted.Render("<arg>")
	}
	return keys
}

// helpText renders a header or footer. Markdown is styled with glamour on
// terminals and flattened to plain text elsewhere.
func helpText(text string, markdown bool, d *DisplayContext) (string, error) {
	if markdown {
		if d.IsTTY {
			return RenderMarkdown(text, d.TermWidth)
		}
		text = PlainMarkdown(text)
	}
	if d.TermWidth > 0 {
		text = wordwrap.String(text, d.TermWidth)
	}
	return text + "\n", nil
}
