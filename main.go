package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/slides/internal/app"
	"github.com/llehouerou/slides/internal/carousel"
	"github.com/llehouerou/slides/internal/config"
	"github.com/llehouerou/slides/internal/content"
	"github.com/llehouerou/slides/internal/errmsg"
	"github.com/llehouerou/slides/internal/icons"
	"github.com/llehouerou/slides/internal/logging"
	"github.com/llehouerou/slides/internal/ui/cellsize"
	"github.com/llehouerou/slides/internal/ui/slider"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	contentFile := flag.String("content", "", "content file (JSON, TOML or YAML)")
	contentKey := flag.String("key", "", "key of the section inside the content file")
	watch := flag.Bool("watch", false, "reload the content file when it changes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *contentFile != "" {
		cfg.ContentFile = *contentFile
	}
	if *contentKey != "" {
		cfg.ContentKey = *contentKey
	}

	icons.Init(cfg.Icons)

	log := openLogger(cfg)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := app.Options{
		Slider:      sliderOptions(cfg.GetSliderConfig()),
		ContentPath: cfg.ContentFile,
		BaseURL:     cfg.BaseURL,
		Logger:      log,
	}

	section := content.Section{ID: content.DefaultSectionID}
	if !cfg.HasContentFile() {
		opts.Notice = "No content file configured; pass -content or set content_file"
	} else {
		section, err = content.Load(cfg.ContentFile, cfg.ContentKey)
		if err != nil {
			return errmsg.Wrap(errmsg.OpContentLoad, cfg.ContentFile, err)
		}
		log.Info("content loaded",
			zap.String("path", cfg.ContentFile),
			zap.String("key", cfg.ContentKey),
			zap.Int("items", section.Len()),
		)

		if *watch {
			updates, err := content.NewWatcher(cfg.ContentFile, cfg.ContentKey, log.Named("watch")).Run(ctx)
			if err != nil {
				opts.Notice = errmsg.FormatWith(errmsg.OpContentWatch, cfg.ContentFile, err)
			} else {
				opts.Updates = updates
			}
		}
	}

	p := tea.NewProgram(app.New(section, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// openLogger returns the file logger, or a no-op logger when the log file
// cannot be opened. The terminal belongs to the UI, so failures go to stderr
// before the program starts.
func openLogger(cfg *config.Config) *zap.Logger {
	path, err := cfg.LogPath()
	if err == nil {
		var log *zap.Logger
		if log, err = logging.New(path, cfg.LogLevel); err == nil {
			return log
		}
	}
	fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLogging, err))
	return zap.NewNop()
}

func sliderOptions(c config.SliderConfig) slider.Options {
	return slider.Options{
		SizingMode:       slider.SizingMode(c.SizingMode),
		ShrinkAmountPx:   c.Shrink(),
		ContainerPadPx:   c.Pad(),
		GapCols:          c.GapCols,
		CellWidthPx:      cellsize.Width(c.CellWidthPx),
		Breakpoints:      carousel.Breakpoints{Medium: c.MediumWidthPx, Large: c.LargeWidthPx},
		SwipeThresholdPx: c.SwipeThresholdPx,
		Animate:          c.AnimationEnabled(),
	}
}
