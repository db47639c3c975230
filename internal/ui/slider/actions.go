package slider

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/carousel"
	"github.com/llehouerou/slides/internal/content"
	"github.com/llehouerou/slides/internal/ui/action"
)

// Source tags the action messages of the slider.
const Source = "slider"

// Navigated is emitted after the carousel moved to a new position.
type Navigated struct {
	Index     int
	Direction carousel.Swipe
}

// ActionType implements action.Action.
func (a Navigated) ActionType() string { return "slider.navigated" }

// CopyLink asks the host to put the item's link on the clipboard.
type CopyLink struct {
	Item content.Item
}

// ActionType implements action.Action.
func (a CopyLink) ActionType() string { return "slider.copy_link" }

// OpenLink asks the host to open the item's link.
type OpenLink struct {
	Item content.Item
}

// ActionType implements action.Action.
func (a OpenLink) ActionType() string { return "slider.open_link" }

func actionCmd(a action.Action) tea.Cmd {
	return action.Cmd(Source, a)
}
