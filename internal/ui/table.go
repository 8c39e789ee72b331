package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Table provides minimal table/list rendering
// Uses simple spacing alignment without borders

// Table represents a simple table structure. Cells may carry ANSI styling;
// widths are measured on the visible text.
type Table struct {
	rows       [][]string
	colWidths  []int
	colPadding int
	indent     string
	maxWidth   int
}

// NewTable creates a new table with the specified number of columns
func NewTable(cols int) *Table {
	return &Table{
		colWidths:  make([]int, cols),
		colPadding: 2,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if w := lipgloss.Width(cells[i]); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// SetPadding sets the padding between columns
func (t *Table) SetPadding(padding int) {
	t.colPadding = padding
}

// SetIndent sets the prefix written before every line
func (t *Table) SetIndent(indent string) {
	t.indent = indent
}

// SetMaxWidth wraps the last column so lines fit in width. Zero disables
// wrapping.
func (t *Table) SetMaxWidth(width int) {
	t.maxWidth = width
}

// String renders the table as a string
func (t *Table) String() string {
	if len(t.rows) == 0 {
		return ""
	}

	var sb strings.Builder
	padding := strings.Repeat(" ", t.colPadding)
	last := len(t.colWidths) - 1

	// Continuation lines of the last column start under its first line.
	lead := len(t.indent)
	for i := 0; i < last; i++ {
		lead += t.colWidths[i] + t.colPadding
	}
	wrapAt := 0
	if t.maxWidth > 0 && t.maxWidth-lead >= 20 {
		wrapAt = t.maxWidth - lead
	}

	for _, row := range t.rows {
		var line strings.Builder
		line.WriteString(t.indent)
		for i, cell := range row {
			if i > 0 {
				line.WriteString(padding)
			}
			if i < last {
				line.WriteString(cell)
				line.WriteString(strings.Repeat(" ", t.colWidths[i]-lipgloss.Width(cell)))
				continue
			}
			if wrapAt > 0 {
				cell = wordwrap.String(cell, wrapAt)
			}
			cell = strings.ReplaceAll(cell, "\n", "\n"+strings.Repeat(" ", lead))
			line.WriteString(cell)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// List provides a simple indented list renderer
type List struct {
	items  []string
	indent string
	bullet string
}

// NewList creates a new list with default settings
func NewList() *List {
	return &List{
		indent: "  ",
		bullet: "•",
	}
}

// SetIndent sets the indentation string
func (l *List) SetIndent(indent string) {
	l.indent = indent
}

// SetBullet sets the bullet character
func (l *List) SetBullet(bullet string) {
	l.bullet = bullet
}

// Add adds an item to the list
func (l *List) Add(item string) {
	l.items = append(l.items, item)
}

// Len returns the number of items
func (l *List) Len() int {
	return len(l.items)
}

// String renders the list as a string
func (l *List) String() string {
	var sb strings.Builder
	for _, item := range l.items {
		sb.WriteString(l.indent)
		sb.WriteString(l.bullet)
		sb.WriteString(" ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}
