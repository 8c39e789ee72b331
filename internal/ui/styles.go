package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA unless configured): option keys, app name
// - Muted (gray): Secondary info, argument placeholders
// - No colored success/error/warning in help - use unicode symbols only

const defaultAccentColor = "#A78BFA"

// accentColor is the configured accent; empty disables it.
var accentColor = defaultAccentColor

// mutedColor is the foreground of secondary text.
const mutedColor = lipgloss.Color("#6C7086")

var (
	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(mutedColor)

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)

// ConfigureTheme sets the accent color from a config value. Accepted forms
// are an ANSI code (0-255) or a hex color (#abc, #aabbcc). "default" or an
// empty value restores the built-in accent; anything else disables it.
func ConfigureTheme(accent string) {
	if color, ok := normalizeAccentColor(accent); ok {
		accentColor = color
		return
	}
	switch strings.ToLower(strings.TrimSpace(accent)) {
	case "", "default":
		accentColor = defaultAccentColor
	default:
		accentColor = ""
	}
}

// AccentColor returns the configured accent color, if any.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

// accentStyle returns a style of r in the accent color, or a plain style
// when the accent is disabled.
func accentStyle(r *lipgloss.Renderer) lipgloss.Style {
	if color, ok := AccentColor(); ok {
		return r.NewStyle().Foreground(lipgloss.Color(color))
	}
	return r.NewStyle()
}

func normalizeAccentColor(value string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", false
		}
		switch len(hex) {
		case 6:
			return "#" + hex, true
		case 3:
			return fmt.Sprintf("#%c%c%c%c%c%c", hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]), true
		}
		return "", false
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return strconv.Itoa(n), true
}
