// Package cellsize reports the pixel width of one terminal cell, which is how
// column counts are turned into pixel widths for the carousel layout.
package cellsize

// DefaultWidth is the cell width assumed when the terminal does not report
// pixel dimensions.
const DefaultWidth = 8

// Width returns the configured cell width when positive, otherwise the width
// reported by the terminal, otherwise DefaultWidth.
func Width(configured int) int {
	if configured > 0 {
		return configured
	}
	if w := detect(); w > 0 {
		return w
	}
	return DefaultWidth
}
