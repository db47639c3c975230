package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient colors text cluster by cluster, blending From into To in HCL
// space.
type Gradient struct {
	From, To lipgloss.Color
	Bold     bool
}

// TitleGradient is the gradient used for section titles.
func TitleGradient() Gradient {
	t := T()
	return Gradient{From: t.Primary, To: t.Secondary, Bold: true}
}

// Render returns text painted with the gradient.
func (g Gradient) Render(text string) string {
	clusters := graphemes(text)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return g.style(g.From).Render(text)
	}

	stops := g.stops(len(clusters))
	var b strings.Builder
	for i, c := range clusters {
		b.WriteString(g.style(stops[i]).Render(c))
	}
	return b.String()
}

func (g Gradient) style(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(g.Bold)
}

// stops returns n colors evenly spaced from From to To. Colors that are not
// #rrggbb hex fall back to a flat From.
func (g Gradient) stops(n int) []lipgloss.Color {
	out := make([]lipgloss.Color, n)
	from, errFrom := colorful.Hex(string(g.From))
	to, errTo := colorful.Hex(string(g.To))
	if errFrom != nil || errTo != nil || n < 2 {
		for i := range out {
			out[i] = g.From
		}
		return out
	}
	for i := range out {
		out[i] = lipgloss.Color(from.BlendHcl(to, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}

func graphemes(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}
