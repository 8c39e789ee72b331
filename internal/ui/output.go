package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Unicode symbols for status indicators
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
)

// Success returns a success message with checkmark symbol
func Success(msg string) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, msg)
}

// Successf returns a formatted success message with checkmark symbol
func Successf(format string, args ...interface{}) string {
	return Success(fmt.Sprintf(format, args...))
}

// Error returns an error message with X symbol
func Error(msg string) string {
	return fmt.Sprintf("%s %s", SymbolError, msg)
}

// Warning returns a warning message with warning symbol
func Warning(msg string) string {
	return fmt.Sprintf("%s %s", SymbolWarning, msg)
}

// Header returns a styled section header
func Header(msg string) string {
	return Bold.Render(msg)
}

// Hint returns muted hint text
func Hint(msg string) string {
	return Muted.Render(msg)
}

// Count returns a styled count badge (e.g., "(3 failures)")
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("(%d %s)", n, singular)
	}
	return fmt.Sprintf("(%d %s)", n, plural)
}

// Diagnose writes an error line to w, in red when w is a terminal and
// NO_COLOR is unset.
func Diagnose(w io.Writer, msg string) {
	writeColored(w, color.New(color.FgRed), Error(msg))
}

// Warn writes a warning line to w, in yellow when w is a terminal and
// NO_COLOR is unset.
func Warn(w io.Writer, msg string) {
	writeColored(w, color.New(color.FgYellow), Warning(msg))
}

func writeColored(w io.Writer, c *color.Color, line string) {
	if IsTerminal(w) && os.Getenv("NO_COLOR") == "" {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	_, _ = c.Fprintln(w, line)
}
