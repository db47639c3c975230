//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/site.json",
			expected: filepath.Join(home, "site.json"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/www/data/site.json",
			expected: filepath.Join(home, "www", "data", "site.json"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/site.json",
			expected: "/srv/site.json",
		},
		{
			name:     "relative path unchanged",
			input:    "data/site.json",
			expected: "data/site.json",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "slides", "config.toml"), paths[0])
	assert.Equal(t, "config.toml", paths[len(paths)-1])
}

// isolate points the XDG dirs and the working directory at temp dirs so a
// real user config cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_LocalFile(t *testing.T) {
	dir := isolate(t)

	body := `
content_file = "site.json"
content_key = "solutions"
base_url = " https://site.test/ "
icons = "unicode"
log_file = "~/slides.log"

[slider]
sizing_mode = "pad"
container_pad_px = 24
gap_cols = 0
animate = false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "site.json", cfg.ContentFile)
	assert.Equal(t, "solutions", cfg.ContentKey)
	assert.Equal(t, "unicode", cfg.Icons)
	assert.Equal(t, "https://site.test/", cfg.BaseURL)
	assert.True(t, cfg.HasContentFile())

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	logPath, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "slides.log"), logPath)

	s := cfg.GetSliderConfig()
	assert.Equal(t, SizingPad, s.SizingMode)
	assert.Equal(t, 24, s.Pad())
	assert.Equal(t, 0, s.GapCols)
	assert.False(t, s.AnimationEnabled())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultContentKey, cfg.ContentKey)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultGapCols, cfg.Slider.GapCols)

	logPath, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg.StateHome, "slides", "slides.log"), logPath)
}

func TestGetSliderConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	s := cfg.GetSliderConfig()

	assert.Equal(t, SizingShrink, s.SizingMode)
	assert.Equal(t, DefaultInsetPx, s.Shrink())
	assert.Equal(t, DefaultInsetPx, s.Pad())
	assert.Equal(t, 0, s.GapCols)
	assert.Equal(t, 0, s.CellWidthPx)
	assert.Equal(t, 40, s.SwipeThresholdPx)
	assert.Equal(t, 640, s.MediumWidthPx)
	assert.Equal(t, 1024, s.LargeWidthPx)
	assert.True(t, s.AnimationEnabled())
}

func TestLoad_ZeroInsets(t *testing.T) {
	dir := isolate(t)
	body := `
[slider]
shrink_amount_px = 0
container_pad_px = 0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	s := cfg.GetSliderConfig()
	assert.Equal(t, 0, s.Shrink())
	assert.Equal(t, 0, s.Pad())
}

func TestLoad_NegativeInsetRejected(t *testing.T) {
	dir := isolate(t)
	body := `
[slider]
shrink_amount_px = -5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600))

	_, err := Load()
	require.ErrorIs(t, err, ErrNegativeInset)
	assert.Contains(t, err.Error(), "slider.shrink_amount_px = -5")
}

func TestGetSliderConfig_Normalizes(t *testing.T) {
	tests := []struct {
		name  string
		input SliderConfig
		check func(t *testing.T, s SliderConfig)
	}{
		{
			name:  "unknown sizing mode falls back to shrink",
			input: SliderConfig{SizingMode: "stretch"},
			check: func(t *testing.T, s SliderConfig) {
				assert.Equal(t, SizingShrink, s.SizingMode)
			},
		},
		{
			name:  "sizing mode is case insensitive",
			input: SliderConfig{SizingMode: " PAD "},
			check: func(t *testing.T, s SliderConfig) {
				assert.Equal(t, SizingPad, s.SizingMode)
			},
		},
		{
			name:  "negative gap uses default",
			input: SliderConfig{GapCols: -3},
			check: func(t *testing.T, s SliderConfig) {
				assert.Equal(t, DefaultGapCols, s.GapCols)
			},
		},
		{
			name:  "large breakpoint must exceed medium",
			input: SliderConfig{MediumWidthPx: 2000, LargeWidthPx: 100},
			check: func(t *testing.T, s SliderConfig) {
				assert.Equal(t, 2000, s.MediumWidthPx)
				assert.Equal(t, 2001, s.LargeWidthPx)
			},
		},
		{
			name:  "negative cell width means detect",
			input: SliderConfig{CellWidthPx: -1},
			check: func(t *testing.T, s SliderConfig) {
				assert.Equal(t, 0, s.CellWidthPx)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Slider: tt.input}
			tt.check(t, cfg.GetSliderConfig())
		})
	}
}
