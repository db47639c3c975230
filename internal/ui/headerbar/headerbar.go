// Package headerbar renders the section heading above the carousel.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slides/internal/ui/render"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// Height is the fixed height of the header bar: title and subtitle.
const Height = 2

// Render returns the centered title and subtitle for the given width. Empty
// fields render as blank lines so the height never changes.
func Render(title, subtitle string, width int) string {
	if width <= 0 {
		return strings.Repeat("\n", Height-1)
	}
	t := styles.T()

	var top, bottom string
	if title = render.Truncate(title, width); title != "" {
		top = center(styles.TitleGradient().Render(title), width)
	}
	if subtitle = render.Truncate(subtitle, width); subtitle != "" {
		bottom = center(t.S().Muted.Render(subtitle), width)
	}
	return top + "\n" + bottom
}

func center(s string, width int) string {
	left := max((width-lipgloss.Width(s))/2, 0)
	return strings.Repeat(" ", left) + s
}
