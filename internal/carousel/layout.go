// Package carousel implements the navigation core of a horizontally scrolling
// card carousel: page size derivation, step measurement, the index state
// machine and swipe routing. It knows nothing about terminals; callers feed it
// widths in pixels and a Measurer for the live card geometry.
package carousel

import "math"

// Default breakpoints in pixels.
const (
	DefaultMediumWidth = 640
	DefaultLargeWidth  = 1024
)

// Breakpoints maps a viewport width to the number of visible cards.
// Widths at or above Large show three cards, at or above Medium two, else one.
type Breakpoints struct {
	Medium int
	Large  int
}

// DefaultBreakpoints returns the standard 640/1024 table.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{Medium: DefaultMediumWidth, Large: DefaultLargeWidth}
}

// SlidesPerView returns the page size for the given viewport width.
func (b Breakpoints) SlidesPerView(widthPx int) int {
	switch {
	case widthPx >= b.Large:
		return 3
	case widthPx >= b.Medium:
		return 2
	default:
		return 1
	}
}

// SlidesPerView returns the page size for widthPx using the default table.
func SlidesPerView(widthPx int) int {
	return DefaultBreakpoints().SlidesPerView(widthPx)
}

// MaxIndex returns the deepest valid index for the given item count and page size.
func MaxIndex(itemCount, slidesPerView int) int {
	return max(itemCount-slidesPerView, 0)
}

// StepPixels returns the pixel advance of one index step: the card width plus
// the track gap, rounded so repeated additions do not drift.
// Returns 0 when no card has been rendered (cardWidthPx <= 0).
func StepPixels(cardWidthPx, gapPx float64) int {
	if cardWidthPx <= 0 {
		return 0
	}
	return int(math.Round(cardWidthPx + max(gapPx, 0)))
}

// Measurer reads the live step geometry from whatever renders the cards.
// Implementations return 0 when no card is rendered yet.
type Measurer interface {
	MeasureStepPixels() int
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func() int

// MeasureStepPixels implements Measurer.
func (f MeasurerFunc) MeasureStepPixels() int {
	if f == nil {
		return 0
	}
	return max(f(), 0)
}

// FixedMeasurer always reports the same step. Used where no layout engine
// exists, such as tests.
type FixedMeasurer int

// MeasureStepPixels implements Measurer.
func (m FixedMeasurer) MeasureStepPixels() int {
	return max(int(m), 0)
}
