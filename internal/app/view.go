package app

import (
	"strings"

	"github.com/llehouerou/slides/internal/ui/headerbar"
	"github.com/llehouerou/slides/internal/ui/render"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// headerHeight is the header bar and a blank line.
const headerHeight = headerbar.Height + 1

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 {
		return ""
	}

	sections := []string{
		headerbar.Render(m.Section.Title, m.Section.Subtitle, m.Width),
		"",
		m.Slider.View(),
		"",
		m.renderNotice(),
		m.Help.View(m.Slider.Keys()),
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderNotice() string {
	if m.Notice == "" {
		return ""
	}
	s := styles.T().S()
	style := s.Muted
	switch m.NoticeLevel {
	case NoticeSuccess:
		style = s.Success
	case NoticeError:
		style = s.Error
	case NoticeInfo:
	}
	return style.Render(render.Truncate(m.Notice, m.Width))
}
