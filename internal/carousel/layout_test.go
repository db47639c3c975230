package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlidesPerView(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{320, 1},
		{639, 1},
		{640, 2},
		{1023, 2},
		{1024, 3},
		{1280, 3},
		{4000, 3},
	}

	for _, tt := range tests {
		got := SlidesPerView(tt.width)
		if got != tt.want {
			t.Errorf("SlidesPerView(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestBreakpoints_Custom(t *testing.T) {
	b := Breakpoints{Medium: 80, Large: 160}

	assert.Equal(t, 1, b.SlidesPerView(79))
	assert.Equal(t, 2, b.SlidesPerView(80))
	assert.Equal(t, 3, b.SlidesPerView(160))
}

func TestMaxIndex(t *testing.T) {
	for n := 0; n < 12; n++ {
		for _, width := range []int{300, 700, 1280} {
			spv := SlidesPerView(width)
			assert.Contains(t, []int{1, 2, 3}, spv)
			want := max(0, n-spv)
			assert.Equal(t, want, MaxIndex(n, spv), "n=%d width=%d", n, width)
		}
	}
}

func TestStepPixels(t *testing.T) {
	tests := []struct {
		name string
		card float64
		gap  float64
		want int
	}{
		{"integral", 300, 24, 324},
		{"rounds down", 299.4, 24, 323},
		{"rounds up", 299.6, 24, 324},
		{"no card rendered", 0, 24, 0},
		{"negative card width", -5, 24, 0},
		{"negative gap ignored", 100, -10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StepPixels(tt.card, tt.gap))
		})
	}
}

func TestMeasurers(t *testing.T) {
	assert.Equal(t, 300, FixedMeasurer(300).MeasureStepPixels())
	assert.Equal(t, 0, FixedMeasurer(-1).MeasureStepPixels())

	var nilFunc MeasurerFunc
	assert.Equal(t, 0, nilFunc.MeasureStepPixels())
	assert.Equal(t, 42, MeasurerFunc(func() int { return 42 }).MeasureStepPixels())
}
