package styles

import "github.com/charmbracelet/lipgloss"

// CardStyle returns the bordered card style. The leading card of the current
// page uses the focus border color.
func CardStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// BadgeStyle returns the style of the icon badge in a card's corner.
func BadgeStyle() lipgloss.Style {
	t := T()
	return lipgloss.NewStyle().
		Foreground(t.BgBase).
		Background(t.Primary).
		Bold(true).
		Padding(0, 1)
}
