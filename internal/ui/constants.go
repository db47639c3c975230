// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderWidth is the horizontal space consumed by a rounded border (one column per side).
	BorderWidth = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// CardHeight is the total height of a carousel card, border included.
	CardHeight = 11

	// CardPadding is the horizontal padding inside a card border, per side.
	CardPadding = 1

	// MinCardWidth is the narrowest card worth rendering. Below this the
	// track renders nothing and step measurement reports 0.
	MinCardWidth = 10

	// ControlsHeight is the blank line plus the previous/next row under the track.
	ControlsHeight = 2
)
