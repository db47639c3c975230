// Package render holds width-aware text helpers for card content.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Clean drops control characters other than tab and invalid UTF-8, and
// turns non-breaking spaces into plain ones. Content files are edited by
// hand, and a stray escape byte would corrupt the terminal.
func Clean(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r == '\t':
			return r
		case r == unicode.ReplacementChar, unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Truncate cleans s and shortens it to maxWidth cells, ending in "..." when
// cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Clean(s), maxWidth, "...")
}

// Pad right-fills plain text with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Cell truncates then pads s so it occupies exactly width cells.
func Cell(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Wrap breaks s into lines no wider than width, at word boundaries when it
// can and mid-word when a word is wider than the line.
func Wrap(s string, width int) []string {
	s = strings.TrimSpace(Clean(s))
	if width <= 0 || s == "" {
		return nil
	}
	lines := strings.Split(ansi.Wrap(s, width, ""), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

// Fit shapes lines into exactly n rows of width cells. Extra lines are
// dropped and the last kept row ends in "…"; missing rows are blank.
func Fit(lines []string, n, width int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	copy(out, lines)
	if len(lines) > n {
		out[n-1] = runewidth.Truncate(out[n-1], max(width-1, 0), "") + "…"
	}
	for i, l := range out {
		out[i] = Pad(runewidth.Truncate(l, width, ""), width)
	}
	return out
}
