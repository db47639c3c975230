// Package action carries requests from UI components up to the app model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a request emitted by a component. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg is the tea.Msg delivering an Action, tagged with the emitting
// component.
type Msg struct {
	Source string
	Action Action
}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}
