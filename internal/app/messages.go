package app

import (
	"github.com/llehouerou/slides/internal/content"
	"github.com/llehouerou/slides/internal/errmsg"
)

// ContentUpdateMsg carries a reloaded section from the content watcher.
type ContentUpdateMsg content.Update

// WatcherClosedMsg is sent once the content watcher stops.
type WatcherClosedMsg struct{}

// LinkCopiedMsg is sent after a card link was put on the clipboard.
type LinkCopiedMsg struct {
	Link string
}

// LinkOpenedMsg is sent after a card link was handed to the browser.
type LinkOpenedMsg struct {
	Link string
}

// ErrorMsg reports a failed operation in the notification line.
type ErrorMsg struct {
	Op      errmsg.Op
	Context string
	Err     error
}
