package testutil

import (
	"reflect"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Component is a value-semantics bubbletea component whose Update returns
// its own concrete type.
type Component[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Harness wraps a component for testing, providing helpers to simulate user
// interactions and to collect the commands it returns.
type Harness[M Component[M]] struct {
	model M
	cmds  []tea.Cmd
}

// NewHarness creates a test harness around m.
func NewHarness[M Component[M]](m M) *Harness[M] {
	return &Harness[M]{model: m}
}

// Model returns the current component state.
func (h *Harness[M]) Model() M {
	return h.model
}

// View returns the component's rendered content.
func (h *Harness[M]) View() string {
	return h.model.View()
}

// SendMsg sends any message to the component and returns the resulting command.
func (h *Harness[M]) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates a key press by creating a tea.KeyMsg.
func (h *Harness[M]) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, arrows, etc.).
func (h *Harness[M]) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Resize sends a window size message.
func (h *Harness[M]) Resize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// Drag simulates a left-button drag from (fromX, y) through each of xs,
// releasing at the last position.
func (h *Harness[M]) Drag(y, fromX int, xs ...int) {
	h.SendMsg(tea.MouseMsg{X: fromX, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	last := fromX
	for _, x := range xs {
		h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
		last = x
	}
	h.SendMsg(tea.MouseMsg{X: last, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

// Click simulates a left-button press and release at (x, y).
func (h *Harness[M]) Click(x, y int) {
	h.Drag(y, x)
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness[M]) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *Harness[M]) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears the collected commands.
func (h *Harness[M]) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
// Batches are flattened and the first non-nil message is returned; use
// ExecuteAll to collect every message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	msgs := ExecuteAll(cmd)
	if len(msgs) == 0 {
		return nil
	}
	return msgs[0]
}

// ExecuteAll runs a command, expanding tea.Batch and tea.Sequence results,
// and returns every message produced.
func ExecuteAll(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch m := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range m {
			out = append(out, ExecuteAll(c)...)
		}
		return out
	default:
		if seq, ok := asSequence(msg); ok {
			var out []tea.Msg
			for _, c := range seq {
				out = append(out, ExecuteAll(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	}
}

// ExecuteAndSend runs a command and feeds every resulting message back into
// the component. Returns the messages that were sent.
func (h *Harness[M]) ExecuteAndSend(cmd tea.Cmd) []tea.Msg {
	msgs := ExecuteAll(cmd)
	for _, msg := range msgs {
		h.SendMsg(msg)
	}
	return msgs
}

// ViewContains checks if the component's view contains the given substring.
func (h *Harness[M]) ViewContains(substr string) bool {
	return strings.Contains(StripANSI(h.View()), substr)
}

var cmdType = reflect.TypeOf((tea.Cmd)(nil))

// asSequence unwraps the message produced by tea.Sequence, whose type is
// unexported but is a slice of commands.
func asSequence(msg tea.Msg) ([]tea.Cmd, bool) {
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i], _ = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}
