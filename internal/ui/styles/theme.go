package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette shared by the header, the cards and the help bar.
type Theme struct {
	Primary   lipgloss.Color // focused card border, controls, active dot
	Secondary lipgloss.Color // end of the title gradient

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color
	BgBase   lipgloss.Color // badge text on the accent

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color

	once   sync.Once
	styles Styles
}

// Styles are the text styles derived from a Theme.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Control lipgloss.Style
	Active  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

var dark = Theme{
	Primary:   "#a78bfa",
	Secondary: "#f1a208",

	FgBase:   "#c0c0c0",
	FgMuted:  "#808080",
	FgSubtle: "#585858",
	BgBase:   "#1a1a1a",

	Border:      "#585858",
	BorderFocus: "#a78bfa",

	Success: "#42b883",
	Error:   "#ff5555",
}

// T returns the application theme.
func T() *Theme {
	return &dark
}

// S returns the styles of the theme, built on first use.
func (t *Theme) S() *Styles {
	t.once.Do(func() {
		fg := func(c lipgloss.Color) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(c)
		}
		t.styles = Styles{
			Base:    fg(t.FgBase),
			Muted:   fg(t.FgMuted),
			Subtle:  fg(t.FgSubtle),
			Title:   fg(t.FgBase).Bold(true),
			Control: fg(t.Primary).Bold(true),
			Active:  fg(t.Primary),
			Success: fg(t.Success),
			Error:   fg(t.Error),
		}
	})
	return &t.styles
}
