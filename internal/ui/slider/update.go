package slider

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/slides/internal/carousel"
	"github.com/llehouerou/slides/internal/content"
	"github.com/llehouerou/slides/internal/keymap"
	"github.com/llehouerou/slides/internal/ui"
)

type zone int

const (
	zoneNone zone = iota
	zoneTrack
	zonePrev
	zoneNext
)

// Update handles messages for the slider. Mouse coordinates are relative to
// the slider's top-left corner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.relayout()
		return m, m.requestFrame()
	case frameMsg:
		m.handleFrame(msg)
		return m, nil
	case animTickMsg:
		return m, m.handleAnimTick(msg)
	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		if !m.active {
			return m, nil
		}
		return m, m.handleMouse(msg)
	}
	return m, nil
}

// relayout recomputes the geometry and clamps the position to the new
// slides-per-view before anything is drawn at the new width.
func (m *Model) relayout() {
	m.geom = Compute(m.Width(), m.opts)
	if m.nav.SetSlidesPerView(m.geom.SlidesPerView) {
		m.log.Debug("slides per view changed",
			zap.Int("slides_per_view", m.geom.SlidesPerView),
			zap.Int("index", m.nav.Index()),
			zap.Int("viewport_px", m.geom.ViewportPx()),
		)
	}
	m.keys.SetNavigationEnabled(m.nav.Enabled())
	m.gesture.Cancel()
	m.press = zoneNone
	m.snap()
}

// SetItems replaces the cards. The position is clamped to the new count and
// the step is measured again on the next frame.
func (m *Model) SetItems(items []content.Item) tea.Cmd {
	m.items = items
	if m.nav.SetItemCount(len(items)) {
		m.log.Debug("index clamped to new item count",
			zap.Int("items", len(items)),
			zap.Int("index", m.nav.Index()),
		)
	}
	m.keys.SetNavigationEnabled(m.nav.Enabled())
	m.snap()
	return m.requestFrame()
}

// Advance moves one card forward, wrapping to the start after the last page.
func (m *Model) Advance() tea.Cmd {
	return m.step(m.nav.Advance, carousel.SwipeAdvance)
}

// Retreat moves one card back, wrapping to the last page from the start.
func (m *Model) Retreat() tea.Cmd {
	return m.step(m.nav.Retreat, carousel.SwipeRetreat)
}

func (m *Model) step(move func() bool, dir carousel.Swipe) tea.Cmd {
	if !move() {
		return nil
	}
	m.log.Debug("navigated",
		zap.Stringer("direction", dir),
		zap.Int("index", m.nav.Index()),
	)
	return tea.Batch(
		m.animate(),
		actionCmd(Navigated{Index: m.nav.Index(), Direction: dir}),
	)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.keys.Resolve(msg) {
	case keymap.ActionPrev:
		return m.Retreat()
	case keymap.ActionNext:
		return m.Advance()
	case keymap.ActionCopyLink:
		if item, ok := m.Current(); ok {
			return actionCmd(CopyLink{Item: item})
		}
	case keymap.ActionOpenLink:
		if item, ok := m.Current(); ok {
			return actionCmd(OpenLink{Item: item})
		}
	}
	return nil
}

// cmdStepper lets the gesture router drive the slider while keeping the
// command each transition returns.
type cmdStepper struct {
	m   *Model
	cmd tea.Cmd
}

func (s *cmdStepper) Advance() bool {
	s.cmd = s.m.Advance()
	return s.cmd != nil
}

func (s *cmdStepper) Retreat() bool {
	s.cmd = s.m.Retreat()
	return s.cmd != nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.press = m.zoneAt(msg.X, msg.Y)
			if m.press == zoneTrack {
				m.gesture.Start(m.toPx(msg.X))
			}
		case tea.MouseButtonWheelLeft:
			return m.Retreat()
		case tea.MouseButtonWheelRight:
			return m.Advance()
		}
	case tea.MouseActionMotion:
		m.gesture.Move(m.toPx(msg.X))
	case tea.MouseActionRelease:
		pressed := m.press
		m.press = zoneNone
		released := m.zoneAt(msg.X, msg.Y)

		switch pressed {
		case zoneTrack:
			m.gesture.Move(m.toPx(msg.X))
			if abs(m.gesture.Delta()) < m.geom.CellPx && released == zoneTrack {
				m.gesture.Cancel()
				return m.clickCard(msg.X)
			}
			s := &cmdStepper{m: m}
			m.gesture.Route(s)
			return s.cmd
		case zonePrev:
			if released == zonePrev {
				return m.Retreat()
			}
		case zoneNext:
			if released == zoneNext {
				return m.Advance()
			}
		}
	}
	return nil
}

func (m *Model) clickCard(x int) tea.Cmd {
	i := m.cardAt(x)
	if i < 0 {
		return nil
	}
	return actionCmd(OpenLink{Item: m.items[i]})
}

func (m Model) toPx(x int) int {
	return x * m.geom.CellPx
}

// zoneAt returns the interactive zone under (x, y).
func (m Model) zoneAt(x, y int) zone {
	g := m.geom
	inTrack := x >= g.PadCols && x < g.PadCols+g.TrackCols
	switch {
	case y >= 0 && y < ui.CardHeight && inTrack:
		return zoneTrack
	case y == controlsRow && m.nav.Enabled() && inTrack:
		prevW, nextW := controlWidths()
		col := x - g.PadCols
		if col < prevW {
			return zonePrev
		}
		if col >= g.TrackCols-nextW {
			return zoneNext
		}
	}
	return zoneNone
}

// cardAt returns the index of the card drawn at column x, or -1 for gaps
// and empty space.
func (m Model) cardAt(x int) int {
	g := m.geom
	if !g.Renderable() {
		return -1
	}
	col := m.trackStart() + x - g.PadCols
	if col < 0 {
		return -1
	}
	stride := g.CardCols + g.GapCols
	if col%stride >= g.CardCols {
		return -1
	}
	i := col / stride
	if i >= len(m.items) {
		return -1
	}
	return i
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
