package slider

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/slides/internal/content"
	"github.com/llehouerou/slides/internal/icons"
	"github.com/llehouerou/slides/internal/ui"
	"github.com/llehouerou/slides/internal/ui/render"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// controlsRow is the row of the previous/next controls, below a blank line.
const controlsRow = ui.CardHeight + 1

// descLines is what is left of the card body after the title, the image and
// link rows, and two spacer rows.
const descLines = ui.CardHeight - ui.BorderHeight - 5

// View renders the track followed by the controls.
func (m Model) View() string {
	if m.Width() <= 0 {
		return ""
	}
	lines := make([]string, 0, m.PreferredHeight())
	lines = append(lines, m.renderTrack()...)
	lines = append(lines, strings.Repeat(" ", m.Width()), m.renderControls())
	return strings.Join(lines, "\n")
}

// trackStart is the first track column visible in the viewport.
func (m Model) trackStart() int {
	return max(m.geom.PxToCols(-m.shownPx), 0)
}

func (m Model) renderTrack() []string {
	g := m.geom
	blank := strings.Repeat(" ", m.Width())
	out := make([]string, ui.CardHeight)
	for i := range out {
		out[i] = blank
	}

	if len(m.items) == 0 || !g.Renderable() {
		msg := "No cards to show"
		if len(m.items) > 0 {
			msg = "Window too narrow"
		}
		out[ui.CardHeight/2] = fill(
			strings.Repeat(" ", g.PadCols)+styles.T().S().Muted.Render(render.Truncate(msg, g.TrackCols)),
			m.Width(),
		)
		return out
	}

	parts := make([]string, 0, 2*len(m.items))
	spacer := gapColumn(g.GapCols)
	for i, item := range m.items {
		if i > 0 && spacer != "" {
			parts = append(parts, spacer)
		}
		parts = append(parts, renderCard(item, g.CardCols, i == m.nav.Index()))
	}
	track := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, parts...), "\n")

	start := m.trackStart()
	pad := strings.Repeat(" ", g.PadCols)
	for i := range out {
		if i >= len(track) {
			break
		}
		visible := fill(ansi.Cut(track[i], start, start+g.TrackCols), g.TrackCols)
		out[i] = fill(pad+visible+pad, m.Width())
	}
	return out
}

func gapColumn(cols int) string {
	if cols <= 0 {
		return ""
	}
	row := strings.Repeat(" ", cols)
	rows := make([]string, ui.CardHeight)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// renderCard draws one card exactly cols columns wide and ui.CardHeight rows
// tall.
func renderCard(item content.Item, cols int, focused bool) string {
	s := styles.T().S()
	inner := max(cols-ui.BorderWidth-2*ui.CardPadding, 1)

	badge := styles.BadgeStyle().Render(icons.Badge())
	titleW := max(inner-lipgloss.Width(badge)-1, 0)
	title := badge + " " + s.Title.Render(render.Cell(item.Title, titleW))

	lines := make([]string, 0, ui.CardHeight-ui.BorderHeight)
	lines = append(lines, title, s.Subtle.Render(render.Cell(icons.FormatIcon(item.Icon), inner)))
	for _, l := range render.Fit(render.Wrap(item.Desc, inner), descLines, inner) {
		lines = append(lines, s.Base.Render(l))
	}
	lines = append(lines,
		"",
		s.Subtle.Render(render.Cell(icons.FormatImage(item.Image), inner)),
		s.Active.Render(render.Cell(icons.FormatLink(item.Link), inner)),
	)

	return styles.CardStyle(focused).
		Padding(0, ui.CardPadding).
		Width(cols - ui.BorderWidth).
		Render(strings.Join(lines, "\n"))
}

func controlLabels() (prev, next string) {
	return icons.Prev() + " previous", "next " + icons.Next()
}

func controlWidths() (prev, next int) {
	p, n := controlLabels()
	return lipgloss.Width(p), lipgloss.Width(n)
}

// renderControls draws the previous/next controls with page dots between
// them. Nothing is drawn when every card already fits.
func (m Model) renderControls() string {
	blank := strings.Repeat(" ", m.Width())
	if !m.nav.Enabled() || m.geom.TrackCols <= 0 {
		return blank
	}
	s := styles.T().S()
	g := m.geom

	prevLabel, nextLabel := controlLabels()
	prevW, nextW := controlWidths()
	if prevW+nextW+1 > g.TrackCols {
		return blank
	}
	middleW := g.TrackCols - prevW - nextW
	middle := fill(centered(m.pageIndicator(middleW-2), middleW), middleW)

	line := strings.Repeat(" ", g.PadCols) +
		s.Control.Render(prevLabel) + middle + s.Control.Render(nextLabel)
	return fill(line, m.Width())
}

// pageIndicator returns one dot per reachable position, or "i/n" when the
// dots do not fit in width.
func (m Model) pageIndicator(width int) string {
	positions := m.nav.MaxIndex() + 1
	if positions*2-1 > width {
		text := fmt.Sprintf("%d/%d", m.nav.Index()+1, positions)
		if lipgloss.Width(text) > width {
			return ""
		}
		return styles.T().S().Muted.Render(text)
	}
	s := styles.T().S()
	dots := make([]string, positions)
	for i := range dots {
		if i == m.nav.Index() {
			dots[i] = s.Active.Render(icons.DotActive())
		} else {
			dots[i] = s.Subtle.Render(icons.DotIdle())
		}
	}
	return strings.Join(dots, " ")
}

func centered(s string, width int) string {
	left := max((width-lipgloss.Width(s))/2, 0)
	return strings.Repeat(" ", left) + s
}

// fill pads a possibly styled string with spaces up to width columns.
func fill(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}
