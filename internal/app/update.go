package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize/english"
	"go.uber.org/zap"

	"github.com/llehouerou/slides/internal/errmsg"
	"github.com/llehouerou/slides/internal/keymap"
	"github.com/llehouerou/slides/internal/ui/action"
	"github.com/llehouerou/slides/internal/ui/slider"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		switch m.Slider.Keys().Resolve(msg) {
		case keymap.ActionQuit:
			return m, m.quit()
		case keymap.ActionHelp:
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		}
		return m.updateSlider(msg)

	case tea.MouseMsg:
		// The slider sees coordinates relative to its own top row.
		msg.Y -= headerHeight
		return m.updateSlider(msg)

	case action.Msg:
		return m.handleAction(msg)

	case ContentUpdateMsg:
		return m.handleContentUpdate(msg)

	case WatcherClosedMsg:
		m.updates = nil
		return m, nil

	case LinkCopiedMsg:
		m.setNotice(NoticeSuccess, "Copied "+msg.Link)
		return m, nil

	case LinkOpenedMsg:
		m.setNotice(NoticeInfo, "Opened "+msg.Link)
		return m, nil

	case ErrorMsg:
		m.log.Warn("operation failed",
			zap.String("op", string(msg.Op)),
			zap.String("context", msg.Context),
			zap.Error(msg.Err),
		)
		m.setNotice(NoticeError, errmsg.FormatWith(msg.Op, msg.Context, msg.Err))
		return m, nil
	}

	// Frame and animation ticks belong to the slider.
	return m.updateSlider(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	var cmd tea.Cmd
	m.Slider, cmd = m.Slider.Update(tea.WindowSizeMsg{
		Width:  msg.Width,
		Height: m.Slider.PreferredHeight(),
	})
	return m, cmd
}

func (m Model) updateSlider(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Slider, cmd = m.Slider.Update(msg)
	return m, cmd
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	if msg.Source != slider.Source {
		return m, nil
	}
	switch a := msg.Action.(type) {
	case slider.Navigated:
		if m.NoticeLevel != NoticeError {
			m.clearNotice()
		}
	case slider.CopyLink:
		return m, CopyLinkCmd(m.copyText, m.baseURL, a.Item.Link)
	case slider.OpenLink:
		return m, OpenLinkCmd(m.openURL, m.baseURL, a.Item.Link)
	}
	return m, nil
}

func (m Model) handleContentUpdate(msg ContentUpdateMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn("content reload failed", zap.String("path", m.contentPath), zap.Error(msg.Err))
		m.setNotice(NoticeError, errmsg.FormatWith(errmsg.OpContentReload, m.contentPath, msg.Err))
		return m, WaitForUpdate(m.updates)
	}

	m.Section = msg.Section
	cmd := m.Slider.SetItems(msg.Section.Items)
	m.log.Info("content reloaded",
		zap.String("section", msg.Section.ID),
		zap.Int("items", msg.Section.Len()),
		zap.Int("index", m.Slider.Index()),
	)
	m.setNotice(NoticeInfo, "Reloaded "+english.Plural(msg.Section.Len(), "card", ""))
	return m, tea.Batch(cmd, WaitForUpdate(m.updates))
}

// quit releases the slider before the program exits.
func (m *Model) quit() tea.Cmd {
	return tea.Sequence(m.Slider.Deactivate(), tea.Quit)
}

func (m *Model) setNotice(level NoticeLevel, text string) {
	m.Notice = text
	m.NoticeLevel = level
}

func (m *Model) clearNotice() {
	m.Notice = ""
	m.NoticeLevel = NoticeInfo
}
