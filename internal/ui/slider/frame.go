package slider

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/llehouerou/slides/internal/carousel"
)

const (
	// frameDelay leaves the renderer one frame to draw the new layout
	// before the step is measured.
	frameDelay = 16 * time.Millisecond
	// animFrame is the easing tick interval.
	animFrame = 16 * time.Millisecond
	// easeFactor is the fraction of the remaining distance covered per tick.
	easeFactor = 0.35
)

// frameMsg asks the slider to measure the committed layout.
type frameMsg struct{ gen uint64 }

// animTickMsg advances the easing of the drawn offset.
type animTickMsg struct{ gen uint64 }

// Activate starts listening for mouse input and schedules the first
// measurement.
func (m *Model) Activate() tea.Cmd {
	m.active = true
	m.gen++
	m.log.Debug("slider activated", zap.Int("items", len(m.items)))
	return tea.Batch(tea.EnableMouseCellMotion, m.requestFrame())
}

// Deactivate releases mouse input. Pending frames and easing ticks are
// dropped when they arrive, so no state changes after this returns.
func (m *Model) Deactivate() tea.Cmd {
	if !m.active {
		return nil
	}
	m.active = false
	m.gen++
	m.gesture.Cancel()
	m.press = zoneNone
	m.snap()
	m.log.Debug("slider deactivated")
	return tea.DisableMouse
}

func (m *Model) requestFrame() tea.Cmd {
	if !m.active {
		return nil
	}
	gen := m.gen
	return tea.Tick(frameDelay, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func (m *Model) handleFrame(msg frameMsg) {
	if msg.gen != m.gen || !m.active {
		return
	}
	step := m.measure()
	if step != m.stepPx {
		m.log.Debug("step measured",
			zap.Int("step_px", step),
			zap.Int("slides_per_view", m.nav.SlidesPerView()),
		)
	}
	m.stepPx = step
	m.snap()
}

// measure returns the distance between two card origins as rendered.
func (m *Model) measure() int {
	if m.measurer != nil {
		return m.measurer.MeasureStepPixels()
	}
	return cardMeasurer{m: m}.MeasureStepPixels()
}

// cardMeasurer measures the first card as the view draws it.
type cardMeasurer struct{ m *Model }

func (c cardMeasurer) MeasureStepPixels() int {
	if len(c.m.items) == 0 || !c.m.geom.Renderable() {
		return 0
	}
	card := renderCard(c.m.items[0], c.m.geom.CardCols, false)
	cardPx := float64(lipgloss.Width(card) * c.m.geom.CellPx)
	return carousel.StepPixels(cardPx, float64(c.m.geom.GapPx()))
}

// snap draws the target offset immediately.
func (m *Model) snap() {
	m.shownPx = float64(m.Offset())
	m.animating = false
}

// animate eases the drawn offset toward the target, or snaps when easing is
// off. A running animation picks up the new target on its next tick.
func (m *Model) animate() tea.Cmd {
	if !m.opts.Animate || !m.active {
		m.snap()
		return nil
	}
	if m.animating {
		return nil
	}
	m.animating = true
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(animFrame, func(time.Time) tea.Msg {
		return animTickMsg{gen: gen}
	})
}

func (m *Model) handleAnimTick(msg animTickMsg) tea.Cmd {
	if msg.gen != m.gen || !m.active || !m.animating {
		return nil
	}
	target := float64(m.Offset())
	m.shownPx += (target - m.shownPx) * easeFactor
	if math.Abs(target-m.shownPx) < 1 {
		m.snap()
		return nil
	}
	return m.tick()
}
