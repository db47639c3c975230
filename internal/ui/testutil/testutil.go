// Package testutil holds helpers for testing rendered components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared as
// plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the number of terminal cells s occupies.
func MeasureWidth(s string) int {
	return lipgloss.Width(s)
}

// LineWidths returns the cell width of every line of a rendered view.
func LineWidths(view string) []int {
	lines := strings.Split(view, "\n")
	widths := make([]int, len(lines))
	for i, l := range lines {
		widths[i] = lipgloss.Width(l)
	}
	return widths
}
