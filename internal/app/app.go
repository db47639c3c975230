// Package app contains the root model of the slides TUI.
package app

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/slides/internal/browser"
	"github.com/llehouerou/slides/internal/content"
	"github.com/llehouerou/slides/internal/ui/slider"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// Options configures the root model.
type Options struct {
	Slider      slider.Options
	ContentPath string                // shown in reload notices
	BaseURL     string                // resolves relative card links
	Updates     <-chan content.Update // nil when the content file is not watched
	Notice      string                // shown on the first frame
	Logger      *zap.Logger

	// CopyText and OpenURL default to the system clipboard and browser.
	CopyText func(string) error
	OpenURL  func(string) error
}

// Model is the root application model containing all state.
type Model struct {
	Section content.Section
	Slider  slider.Model
	Help    help.Model

	Notice      string
	NoticeLevel NoticeLevel

	Width  int
	Height int

	contentPath string
	baseURL     string
	updates     <-chan content.Update
	log         *zap.Logger
	copyText    func(string) error
	openURL     func(string) error
	startCmd    tea.Cmd
}

// NoticeLevel selects the style of the notification line.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeError
)

// New creates the root model and activates the slider over section.
func New(section content.Section, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	openURL := opts.OpenURL
	if openURL == nil {
		openURL = browser.Open
	}

	h := help.New()
	s := styles.T()
	h.Styles.ShortKey = s.S().Control
	h.Styles.ShortDesc = s.S().Muted
	h.Styles.FullKey = s.S().Control
	h.Styles.FullDesc = s.S().Muted
	h.Styles.ShortSeparator = s.S().Subtle
	h.Styles.FullSeparator = s.S().Subtle

	sliderOpts := opts.Slider
	if sliderOpts == (slider.Options{}) {
		sliderOpts = slider.DefaultOptions()
	}
	sl := slider.New(section.Items, sliderOpts, log.Named("slider"))
	start := sl.Activate()

	return Model{
		Section:     section,
		Slider:      sl,
		Help:        h,
		Notice:      opts.Notice,
		contentPath: opts.ContentPath,
		baseURL:     opts.BaseURL,
		updates:     opts.Updates,
		log:         log,
		copyText:    copyText,
		openURL:     openURL,
		startCmd:    start,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startCmd, WaitForUpdate(m.updates))
}
