package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/browser"
	"github.com/llehouerou/slides/internal/content"
	"github.com/llehouerou/slides/internal/errmsg"
)

// WaitForUpdate returns a command that waits for the next content reload.
// A nil channel never delivers, so no command is returned for it.
func WaitForUpdate(ch <-chan content.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return WatcherClosedMsg{}
		}
		return ContentUpdateMsg(u)
	}
}

// CopyLinkCmd resolves link and writes it to the clipboard.
func CopyLinkCmd(write func(string) error, baseURL, link string) tea.Cmd {
	return func() tea.Msg {
		target, err := browser.Resolve(baseURL, link)
		if err != nil {
			return ErrorMsg{Op: errmsg.OpCopyLink, Err: err}
		}
		if err := write(target); err != nil {
			return ErrorMsg{Op: errmsg.OpCopyLink, Context: target, Err: err}
		}
		return LinkCopiedMsg{Link: target}
	}
}

// OpenLinkCmd resolves link and opens it in the browser.
func OpenLinkCmd(open func(string) error, baseURL, link string) tea.Cmd {
	return func() tea.Msg {
		target, err := browser.Resolve(baseURL, link)
		if err != nil {
			return ErrorMsg{Op: errmsg.OpOpenLink, Err: err}
		}
		if err := open(target); err != nil {
			return ErrorMsg{Op: errmsg.OpOpenLink, Context: target, Err: err}
		}
		return LinkOpenedMsg{Link: target}
	}
}
