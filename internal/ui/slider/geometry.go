package slider

import (
	"math"

	"github.com/llehouerou/slides/internal/carousel"
	"github.com/llehouerou/slides/internal/ui"
	"github.com/llehouerou/slides/internal/ui/cellsize"
)

// SizingMode selects how the track leaves room around the cards.
type SizingMode string

const (
	// SizingShrink narrows every card so the edge of the next one shows.
	SizingShrink SizingMode = "shrink"
	// SizingPad insets the whole track instead.
	SizingPad SizingMode = "pad"
)

// Options configures the slider. Magnitudes are in pixels except GapCols.
type Options struct {
	SizingMode       SizingMode
	ShrinkAmountPx   int
	ContainerPadPx   int
	GapCols          int
	CellWidthPx      int
	Breakpoints      carousel.Breakpoints
	SwipeThresholdPx int
	Animate          bool
}

// DefaultOptions returns the standard slider options.
func DefaultOptions() Options {
	return Options{
		SizingMode:       SizingShrink,
		ShrinkAmountPx:   19,
		ContainerPadPx:   19,
		GapCols:          2,
		CellWidthPx:      cellsize.DefaultWidth,
		Breakpoints:      carousel.DefaultBreakpoints(),
		SwipeThresholdPx: carousel.DefaultSwipeThreshold,
		Animate:          true,
	}
}

// Geometry is the layout derived from one viewport width. It is recomputed
// from scratch on every resize.
type Geometry struct {
	CellPx        int // pixel width of one column
	ViewportCols  int // total width given to the slider
	PadCols       int // inset on each side (pad mode)
	TrackCols     int // visible track width
	SlidesPerView int
	CardCols      int // 0 when the viewport is too narrow to render a card
	GapCols       int
}

// Compute derives the geometry for a viewport widthCols columns wide.
func Compute(widthCols int, opts Options) Geometry {
	cell := max(opts.CellWidthPx, 1)
	g := Geometry{
		CellPx:       cell,
		ViewportCols: max(widthCols, 0),
		GapCols:      max(opts.GapCols, 0),
	}
	g.SlidesPerView = opts.Breakpoints.SlidesPerView(g.ViewportPx())

	if opts.SizingMode == SizingPad {
		g.PadCols = pxToCols(opts.ContainerPadPx, cell)
	}
	g.TrackCols = max(g.ViewportCols-2*g.PadCols, 0)

	gapPx := float64(g.GapPx())
	cardPx := (float64(g.TrackCols*cell) - gapPx*float64(g.SlidesPerView-1)) / float64(g.SlidesPerView)
	if opts.SizingMode == SizingShrink {
		cardPx -= float64(max(opts.ShrinkAmountPx, 0))
	}

	g.CardCols = int(math.Floor(cardPx / float64(cell)))
	if g.CardCols < ui.MinCardWidth {
		g.CardCols = 0
	}
	return g
}

// ViewportPx returns the viewport width in pixels.
func (g Geometry) ViewportPx() int {
	return g.ViewportCols * g.CellPx
}

// GapPx returns the track gap in pixels.
func (g Geometry) GapPx() int {
	return g.GapCols * g.CellPx
}

// Renderable reports whether cards fit in the viewport at all.
func (g Geometry) Renderable() bool {
	return g.CardCols > 0
}

// PxToCols converts a pixel distance to the nearest column count.
func (g Geometry) PxToCols(px float64) int {
	return int(math.Round(px / float64(max(g.CellPx, 1))))
}

func pxToCols(px, cell int) int {
	if px <= 0 {
		return 0
	}
	return max(int(math.Round(float64(px)/float64(cell))), 1)
}
