package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	shrink := DefaultOptions()
	shrink.CellWidthPx = 10

	pad := shrink
	pad.SizingMode = SizingPad

	tests := []struct {
		name      string
		cols      int
		opts      Options
		wantSPV   int
		wantCard  int
		wantPad   int
		wantTrack int
	}{
		{"large shrink", 128, shrink, 3, 39, 0, 128},
		{"large pad", 128, pad, 3, 40, 2, 124},
		{"medium shrink", 80, shrink, 2, 37, 0, 80},
		{"small shrink", 50, shrink, 1, 48, 0, 50},
		{"too narrow", 10, shrink, 1, 0, 0, 10},
		{"zero width", 0, shrink, 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Compute(tt.cols, tt.opts)
			assert.Equal(t, tt.wantSPV, g.SlidesPerView)
			assert.Equal(t, tt.wantCard, g.CardCols)
			assert.Equal(t, tt.wantPad, g.PadCols)
			assert.Equal(t, tt.wantTrack, g.TrackCols)
		})
	}
}

func TestCompute_BreakpointsUsePixels(t *testing.T) {
	opts := DefaultOptions()
	opts.CellWidthPx = 8

	assert.Equal(t, 1, Compute(79, opts).SlidesPerView, "632px")
	assert.Equal(t, 2, Compute(80, opts).SlidesPerView, "640px")
	assert.Equal(t, 2, Compute(127, opts).SlidesPerView, "1016px")
	assert.Equal(t, 3, Compute(128, opts).SlidesPerView, "1024px")
}

func TestGeometry_Conversions(t *testing.T) {
	g := Geometry{CellPx: 8, ViewportCols: 100, GapCols: 2}

	assert.Equal(t, 800, g.ViewportPx())
	assert.Equal(t, 16, g.GapPx())
	assert.Equal(t, 3, g.PxToCols(24))
	assert.Equal(t, 3, g.PxToCols(21))
	assert.False(t, g.Renderable())
}
