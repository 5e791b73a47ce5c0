package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tabsview/internal/toolbar"
)

var validThemes = []string{"latte", "frappe", "macchiato", "mocha"}

var validLogLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	Theme           string          `yaml:"theme"`
	Position        string          `yaml:"position"`
	IgnoresKeyboard bool            `yaml:"ignores_keyboard"`
	Animation       AnimationConfig `yaml:"animation"`
	KeyboardHeight  int             `yaml:"keyboard_height"`
	LogLevel        string          `yaml:"log_level"`
	LogFile         string          `yaml:"log_file,omitempty"`
}

type AnimationConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Curve      string `yaml:"curve"`
	DurationMS int    `yaml:"duration_ms"`
}

func DefaultConfig() Config {
	return Config{
		Theme:           "mocha",
		Position:        "bottom",
		IgnoresKeyboard: true,
		Animation: AnimationConfig{
			Enabled:    true,
			Curve:      "ease-in-out",
			DurationMS: 350,
		},
		KeyboardHeight: 8,
		LogLevel:       "info",
	}
}

func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the YAML file at configPath over the defaults. A missing
// file yields the defaults.
func LoadFrom(configPath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing %s: %w", configPath, err)
	}

	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}
	if cfg.Position == "" {
		cfg.Position = "bottom"
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if !slices.Contains(validThemes, c.Theme) {
		errs = append(errs, fmt.Errorf("theme %q: want one of %s", c.Theme, strings.Join(validThemes, ", ")))
	}
	if _, err := toolbar.ParsePosition(c.Position); err != nil {
		errs = append(errs, err)
	}
	if _, err := toolbar.ParseCurve(c.Animation.Curve); err != nil {
		errs = append(errs, err)
	}
	if c.Animation.DurationMS < 0 {
		errs = append(errs, fmt.Errorf("animation.duration_ms %d: must not be negative", c.Animation.DurationMS))
	}
	if c.KeyboardHeight < 0 {
		errs = append(errs, fmt.Errorf("keyboard_height %d: must not be negative", c.KeyboardHeight))
	}
	if c.LogLevel != "" && !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("log_level %q: want one of %s", c.LogLevel, strings.Join(validLogLevels, ", ")))
	}

	return errors.Join(errs...)
}

// BarPosition returns the configured bar position.
func (c Config) BarPosition() toolbar.Position {
	p, err := toolbar.ParsePosition(c.Position)
	if err != nil {
		return toolbar.Bottom
	}
	return p
}

// ToolbarAnimation returns the configured inset animation, nil when
// animation is disabled or has no duration.
func (c Config) ToolbarAnimation() *toolbar.Animation {
	if !c.Animation.Enabled || c.Animation.DurationMS <= 0 {
		return nil
	}
	curve, err := toolbar.ParseCurve(c.Animation.Curve)
	if err != nil {
		curve = toolbar.EaseInOut
	}
	return &toolbar.Animation{
		Duration: time.Duration(c.Animation.DurationMS) * time.Millisecond,
		Curve:    curve,
	}
}

// ToolbarOptions converts the bar settings to container options.
func (c Config) ToolbarOptions() []toolbar.Option {
	return []toolbar.Option{
		toolbar.WithPosition(c.BarPosition()),
		toolbar.WithIgnoresKeyboard(c.IgnoresKeyboard),
		toolbar.WithAnimation(c.ToolbarAnimation()),
	}
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "tabsview", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "tabsview", "config.yaml")
	}

	return filepath.Join(home, ".config", "tabsview", "config.yaml")
}
