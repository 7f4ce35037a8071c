// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/user/trimmonitor/pkg/matchframe"
	"github.com/user/trimmonitor/pkg/monitor"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TRIMMONITOR_"

// Config represents the full configuration for trimmonitor.
type Config struct {
	// Trim view
	TrimView       bool   `yaml:"trim_view" env:"TRIM_VIEW"`
	ScratchDir     string `yaml:"scratch_dir" env:"SCRATCH_DIR"`
	MatchFrameName string `yaml:"match_frame_name" env:"MATCH_FRAME_NAME"`

	// Extraction
	FFmpegPath     string `yaml:"ffmpeg_path" env:"FFMPEG_PATH"`
	PollIntervalMs int    `yaml:"poll_interval_ms" env:"POLL_INTERVAL_MS"`
	TimeoutMs      int    `yaml:"timeout_ms" env:"TIMEOUT_MS"`

	// Snapshot widget size
	MonitorWidth  int `yaml:"monitor_width" env:"MONITOR_WIDTH"`
	MonitorHeight int `yaml:"monitor_height" env:"MONITOR_HEIGHT"`

	Theme ThemeConfig `yaml:"theme" envPrefix:"THEME_"`

	// Logging
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// Debug
	Debug    bool   `yaml:"debug" env:"DEBUG"`
	DebugDir string `yaml:"debug_dir" env:"DEBUG_DIR"`
}

// ThemeConfig represents the panel colors and timecode font.
type ThemeConfig struct {
	BackgroundColor string  `yaml:"background_color" env:"BACKGROUND_COLOR"`
	IndicatorColor  string  `yaml:"indicator_color" env:"INDICATOR_COLOR"`
	TextColor       string  `yaml:"text_color" env:"TEXT_COLOR"`
	FontSize        float64 `yaml:"font_size" env:"FONT_SIZE"`
	FontPath        string  `yaml:"font_path" env:"FONT_PATH"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		TrimView:       true,
		ScratchDir:     DefaultScratchDir(),
		MatchFrameName: monitor.DefaultMatchFrameName,

		PollIntervalMs: int(matchframe.DefaultPollInterval / time.Millisecond),
		TimeoutMs:      int(matchframe.DefaultTimeout / time.Millisecond),

		MonitorWidth:  1920,
		MonitorHeight: 1080,

		Theme: ThemeConfig{
			BackgroundColor: "#000000",
			IndicatorColor:  "#4783a9",
			TextColor:       "#ffffff",
			FontSize:        21,
		},

		LogLevel: "info",

		DebugDir: "./debug",
	}
}

// DefaultScratchDir returns ~/.trimmonitor/trim, or a directory under the
// system temp dir when there is no home directory.
func DefaultScratchDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "trimmonitor", "trim")
	}
	return filepath.Join(home, ".trimmonitor", "trim")
}

// Load returns the defaults, overlaid with the YAML file at path when path is
// not empty, overlaid with TRIMMONITOR_* environment variables.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		var err error
		cfg, err = LoadFromFile(path)
		if err != nil {
			return cfg, err
		}
	}

	if err := ApplyEnv(&cfg, nil); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplyEnv overrides cfg from environment variables. A nil environ reads the
// process environment.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	return env.ParseWithOptions(cfg, opts)
}

// ParseColor parses "#rrggbb" or "#rgb" into a color. Malformed input yields
// black.
func ParseColor(hex string) color.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.Black
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.Black
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// ToMonitorOptions converts Config to monitor.Options.
func (c Config) ToMonitorOptions() monitor.Options {
	return monitor.Options{
		TrimViewEnabled: c.TrimView,
		ScratchDir:      c.ScratchDir,
		MatchFrameName:  c.MatchFrameName,
		Theme: monitor.Theme{
			Background: ParseColor(c.Theme.BackgroundColor),
			Indicator:  ParseColor(c.Theme.IndicatorColor),
			Text:       ParseColor(c.Theme.TextColor),
			FontSize:   c.Theme.FontSize,
			FontPath:   c.Theme.FontPath,
		},
	}
}

// ToWriterOptions converts Config to matchframe.Options.
func (c Config) ToWriterOptions() matchframe.Options {
	return matchframe.Options{
		Dir:          c.ScratchDir,
		FFmpegPath:   c.FFmpegPath,
		PollInterval: time.Duration(c.PollIntervalMs) * time.Millisecond,
		Timeout:      time.Duration(c.TimeoutMs) * time.Millisecond,
	}
}
