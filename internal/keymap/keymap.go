package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the application key bindings. It implements help.KeyMap.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	CopyLink key.Binding
	OpenLink key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// Default returns the default key bindings.
func Default() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		OpenLink: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open link"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SetNavigationEnabled shows or hides the previous/next bindings. Disabled
// bindings neither match nor appear in help.
func (k *KeyMap) SetNavigationEnabled(enabled bool) {
	k.Prev.SetEnabled(enabled)
	k.Next.SetEnabled(enabled)
}

// Resolve returns the action bound to msg, or ActionNone.
func (k KeyMap) Resolve(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Help):
		return ActionHelp
	case key.Matches(msg, k.Prev):
		return ActionPrev
	case key.Matches(msg, k.Next):
		return ActionNext
	case key.Matches(msg, k.CopyLink):
		return ActionCopyLink
	case key.Matches(msg, k.OpenLink):
		return ActionOpenLink
	}
	return ActionNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.OpenLink, k.CopyLink},
		{k.Help, k.Quit},
	}
}
