// Package slider renders a horizontally paged card carousel and routes keys,
// mouse drags and control clicks into the carousel state machine.
package slider

import (
	"go.uber.org/zap"

	"github.com/llehouerou/slides/internal/carousel"
	"github.com/llehouerou/slides/internal/content"
	"github.com/llehouerou/slides/internal/keymap"
	"github.com/llehouerou/slides/internal/ui"
)

// Model is the carousel component.
type Model struct {
	ui.Base
	items []content.Item
	opts  Options
	keys  keymap.KeyMap
	log   *zap.Logger

	nav     carousel.Navigator
	gesture carousel.GestureRouter
	geom    Geometry

	measurer carousel.Measurer // overrides measuring the rendered cards
	stepPx   int

	shownPx   float64 // offset currently drawn; eases toward the target
	animating bool

	active bool
	gen    uint64 // bumped on (de)activation; stale frames carry an older value
	press  zone
}

// New creates a slider over items. A nil logger disables logging.
func New(items []content.Item, opts Options, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		items:   items,
		opts:    opts,
		keys:    keymap.Default(),
		log:     log,
		gesture: carousel.NewGestureRouter(opts.SwipeThresholdPx),
	}
	m.geom = Compute(0, opts)
	m.nav = carousel.NewNavigator(len(items), m.geom.SlidesPerView)
	m.keys.SetNavigationEnabled(m.nav.Enabled())
	return m
}

// Items returns the cards shown by the slider.
func (m Model) Items() []content.Item {
	return m.items
}

// Index returns the index of the leftmost visible card.
func (m Model) Index() int {
	return m.nav.Index()
}

// SlidesPerView returns how many cards the current width shows at once.
func (m Model) SlidesPerView() int {
	return m.nav.SlidesPerView()
}

// MaxIndex returns the last valid navigation index.
func (m Model) MaxIndex() int {
	return m.nav.MaxIndex()
}

// NavigationEnabled reports whether there are more cards than fit the view.
func (m Model) NavigationEnabled() bool {
	return m.nav.Enabled()
}

// StepPx returns the last measured distance between two card origins.
func (m Model) StepPx() int {
	return m.stepPx
}

// Offset returns the track translation for the current position, in pixels.
func (m Model) Offset() int {
	return m.nav.Offset(m.stepPx)
}

// ShownOffset returns the translation currently drawn, which lags Offset
// while the track is easing.
func (m Model) ShownOffset() float64 {
	return m.shownPx
}

// Animating reports whether the track is easing toward its target.
func (m Model) Animating() bool {
	return m.animating
}

// Active reports whether the slider listens for input and frames.
func (m Model) Active() bool {
	return m.active
}

// Geometry returns the layout derived from the last resize.
func (m Model) Geometry() Geometry {
	return m.geom
}

// Keys returns the slider's key bindings, with navigation bindings disabled
// when every card already fits.
func (m Model) Keys() keymap.KeyMap {
	return m.keys
}

// Current returns the leftmost visible card.
func (m Model) Current() (content.Item, bool) {
	if m.nav.Index() >= len(m.items) {
		return content.Item{}, false
	}
	return m.items[m.nav.Index()], true
}

// SetMeasurer replaces measuring the rendered cards with mr. A nil mr
// restores the default.
func (m *Model) SetMeasurer(mr carousel.Measurer) {
	m.measurer = mr
}

// PreferredHeight returns the rows the slider needs: the card track and the
// controls.
func (m Model) PreferredHeight() int {
	return ui.CardHeight + ui.ControlsHeight
}
