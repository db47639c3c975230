package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "slides"

// Sizing modes for the card track.
const (
	SizingShrink = "shrink" // cards are narrowed to reveal the edge of the next one
	SizingPad    = "pad"    // the track gets a horizontal inset instead
)

// DefaultContentKey is the section key read from the content file.
const DefaultContentKey = "solutionsSlider"

// DefaultGapCols is the number of columns between two cards.
const DefaultGapCols = 2

// DefaultInsetPx is the shrink amount and container pad used when unset.
const DefaultInsetPx = 19

// ErrNegativeInset is returned by Load for a negative shrink amount or
// container pad.
var ErrNegativeInset = errors.New("must not be negative")

type Config struct {
	ContentFile string `koanf:"content_file"` // JSON, TOML or YAML document holding the section
	ContentKey  string `koanf:"content_key"`  // dotted key of the section inside ContentFile
	BaseURL     string `koanf:"base_url"`     // resolves relative card links
	Icons       string `koanf:"icons"`        // "nerd", "unicode", or "none"
	LogFile     string `koanf:"log_file"`     // empty uses the XDG state dir
	LogLevel    string `koanf:"log_level"`    // zap level name (default: "info")

	Slider SliderConfig `koanf:"slider"`
}

// SliderConfig holds carousel geometry and gesture settings.
type SliderConfig struct {
	SizingMode       string `koanf:"sizing_mode"`          // "shrink" or "pad" (default: "shrink")
	ShrinkAmountPx   *int   `koanf:"shrink_amount_px"`     // pixels removed from each card in shrink mode (default: 19)
	ContainerPadPx   *int   `koanf:"container_pad_px"`     // inset on each side in pad mode (default: 19)
	GapCols          int    `koanf:"gap_cols"`             // columns between cards (default: 2)
	CellWidthPx      int    `koanf:"cell_width_px"`        // 0 detects from the terminal
	SwipeThresholdPx int    `koanf:"swipe_threshold_px"`   // drag distance that counts as a swipe (default: 40)
	MediumWidthPx    int    `koanf:"breakpoint_medium_px"` // two cards from this width (default: 640)
	LargeWidthPx     int    `koanf:"breakpoint_large_px"`  // three cards from this width (default: 1024)
	Animate          *bool  `koanf:"animate"`              // ease the track between positions (default: true)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		ContentKey: DefaultContentKey,
		LogLevel:   "info",
		Slider:     SliderConfig{GapCols: DefaultGapCols},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.ContentFile = expandPath(cfg.ContentFile)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.ContentKey = strings.TrimSpace(cfg.ContentKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)

	if err := cfg.Slider.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/slides/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DefaultLogPath returns the log file location under the XDG state directory.
func DefaultLogPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// LogPath returns the configured log file, or the default location.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return DefaultLogPath()
}

// HasContentFile returns true if a content file is configured.
func (c *Config) HasContentFile() bool {
	return c.ContentFile != ""
}

// GetSliderConfig returns the slider configuration with defaults applied.
func (c *Config) GetSliderConfig() SliderConfig {
	cfg := c.Slider

	// Apply defaults
	cfg.SizingMode = strings.ToLower(strings.TrimSpace(cfg.SizingMode))
	if cfg.SizingMode != SizingShrink && cfg.SizingMode != SizingPad {
		cfg.SizingMode = SizingShrink
	}
	cfg.ShrinkAmountPx = insetOrDefault(cfg.ShrinkAmountPx)
	cfg.ContainerPadPx = insetOrDefault(cfg.ContainerPadPx)
	if cfg.GapCols < 0 {
		cfg.GapCols = DefaultGapCols
	}
	if cfg.CellWidthPx < 0 {
		cfg.CellWidthPx = 0
	}
	if cfg.SwipeThresholdPx <= 0 {
		cfg.SwipeThresholdPx = 40
	}
	if cfg.MediumWidthPx <= 0 {
		cfg.MediumWidthPx = 640
	}
	if cfg.LargeWidthPx <= cfg.MediumWidthPx {
		cfg.LargeWidthPx = max(1024, cfg.MediumWidthPx+1)
	}
	if cfg.Animate == nil {
		animate := true
		cfg.Animate = &animate
	}

	return cfg
}

// Shrink returns the shrink amount in pixels; zero is a valid setting.
func (s SliderConfig) Shrink() int {
	return *insetOrDefault(s.ShrinkAmountPx)
}

// Pad returns the container pad in pixels; zero is a valid setting.
func (s SliderConfig) Pad() int {
	return *insetOrDefault(s.ContainerPadPx)
}

func (s SliderConfig) validate() error {
	for key, v := range map[string]*int{
		"shrink_amount_px": s.ShrinkAmountPx,
		"container_pad_px": s.ContainerPadPx,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("slider.%s = %d: %w", key, *v, ErrNegativeInset)
		}
	}
	return nil
}

func insetOrDefault(v *int) *int {
	if v == nil || *v < 0 {
		d := DefaultInsetPx
		return &d
	}
	return v
}

// AnimationEnabled reports whether track easing is on.
func (s SliderConfig) AnimationEnabled() bool {
	return s.Animate == nil || *s.Animate
}
