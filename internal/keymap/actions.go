// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionNone Action = ""

	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Carousel actions
	ActionPrev     Action = "prev"
	ActionNext     Action = "next"
	ActionCopyLink Action = "copy_link"
	ActionOpenLink Action = "open_link"
)
