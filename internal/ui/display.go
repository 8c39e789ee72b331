package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultTermWidth is the fallback terminal width when detection fails.
const DefaultTermWidth = 120

// DisplayContext holds display parameters, auto-detecting terminal width.
// It is the single source of truth for display settings.
type DisplayContext struct {
	TermWidth int  // detected or fallback terminal width
	IsTTY     bool // whether the target writer is a terminal
}

// NewDisplayContext creates a DisplayContext for stdout.
func NewDisplayContext() *DisplayContext {
	return NewDisplayContextFor(os.Stdout)
}

// NewDisplayContextFor creates a DisplayContext for w. Writers that are not
// files are treated as non-terminals with the default width.
func NewDisplayContextFor(w io.Writer) *DisplayContext {
	fd, ok := fileDescriptor(w)
	isTTY := ok && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))

	width := DefaultTermWidth
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}

	return &DisplayContext{
		TermWidth: width,
		IsTTY:     isTTY,
	}
}

// NewDisplayContextWithWidth creates a DisplayContext with a fixed width (for testing).
func NewDisplayContextWithWidth(width int) *DisplayContext {
	return &DisplayContext{
		TermWidth: width,
		IsTTY:     true,
	}
}

// AvailableWidth returns the usable width after accounting for left margin.
func (d *DisplayContext) AvailableWidth(leftMargin int) int {
	return d.TermWidth - leftMargin
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	fd, ok := fileDescriptor(w)
	return ok && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

func fileDescriptor(w io.Writer) (uintptr, bool) {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	return f.Fd(), true
}
