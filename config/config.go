// Package config loads the TOML configuration of the demo: frame options,
// natural scrolling constants per input type, audio and key bindings.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/scrollframe/audio"
	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/frame"
	"github.com/lixenwraith/scrollframe/input"
)

// Config is the root of the TOML document
type Config struct {
	Frame      FrameConfig          `toml:"frame"`
	Navigation map[string]NavConfig `toml:"navigation"`
	Input      InputConfig          `toml:"input"`
	Audio      AudioConfig          `toml:"audio"`
	Keys       map[string]string    `toml:"keys"`
	Runes      map[string]string    `toml:"runes"`
}

// FrameConfig configures every scrolling frame
type FrameConfig struct {
	Orientation string        `toml:"orientation"`
	Behavior    string        `toml:"behavior"`
	Indicator   bool          `toml:"indicator"`
	Animation   time.Duration `toml:"animation"`
	Padding     []float64     `toml:"padding"` // top, right, bottom, left
}

// NavConfig is one [navigation.<type>] table
type NavConfig struct {
	Step           float64       `toml:"step"`
	RepeatStep     float64       `toml:"repeat_step"`
	RepeatDuration time.Duration `toml:"repeat_duration"`
}

// InputConfig tunes the input machine
type InputConfig struct {
	RepeatWindow time.Duration `toml:"repeat_window"`
}

// AudioConfig mirrors audio.AudioConfig with config names
type AudioConfig struct {
	Enabled bool               `toml:"enabled"`
	Volume  float64            `toml:"volume"`
	Effects map[string]float64 `toml:"effects"`
}

// Default returns the built-in configuration
func Default() *Config {
	nav := make(map[string]NavConfig)
	for t, c := range frame.DefaultNavConstants() {
		nav[t.String()] = NavConfig{Step: c.Step, RepeatStep: c.RepeatStep, RepeatDuration: c.RepeatDuration}
	}
	ac := audio.DefaultAudioConfig()
	return &Config{
		Frame: FrameConfig{
			Orientation: core.Vertical.String(),
			Behavior:    frame.BehaviorNatural.String(),
			Indicator:   true,
			Animation:   frame.DefaultAnimationDuration,
		},
		Navigation: nav,
		Input:      InputConfig{RepeatWindow: input.DefaultRepeatWindow},
		Audio:      AudioConfig{Enabled: ac.Enabled, Volume: ac.MasterVolume},
	}
}

// Load reads and parses the file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config read: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result
// Keys absent from data keep their default values
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	defaults := cfg.Navigation
	cfg.Navigation = nil

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	// Navigation tables merge field by field over the defaults
	merged := defaults
	for name, nc := range cfg.Navigation {
		base := merged[name]
		if md.IsDefined("navigation", name, "step") {
			base.Step = nc.Step
		}
		if md.IsDefined("navigation", name, "repeat_step") {
			base.RepeatStep = nc.RepeatStep
		}
		if md.IsDefined("navigation", name, "repeat_duration") {
			base.RepeatDuration = nc.RepeatDuration
		}
		merged[name] = base
	}
	cfg.Navigation = merged

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every value that is parsed lazily by the accessors
func (c *Config) Validate() error {
	if _, err := core.ParseOrientation(c.Frame.Orientation); err != nil {
		return fmt.Errorf("[frame] %w", err)
	}
	if _, err := frame.ParseBehavior(c.Frame.Behavior); err != nil {
		return fmt.Errorf("[frame] %w", err)
	}
	if c.Frame.Animation < 0 {
		return fmt.Errorf("[frame] animation must not be negative, got %s", c.Frame.Animation)
	}
	if n := len(c.Frame.Padding); n != 0 && n != 4 {
		return fmt.Errorf("[frame] padding needs 4 values (top, right, bottom, left), got %d", n)
	}
	if _, err := c.NavConstants(); err != nil {
		return err
	}
	if c.Input.RepeatWindow < 0 {
		return fmt.Errorf("[input] repeat_window must not be negative, got %s", c.Input.RepeatWindow)
	}
	if _, err := c.KeyOverrides(); err != nil {
		return err
	}
	return nil
}

// Orientation returns the parsed frame orientation
func (c *Config) Orientation() core.Orientation {
	o, _ := core.ParseOrientation(c.Frame.Orientation)
	return o
}

// Behavior returns the parsed scrolling behavior
func (c *Config) Behavior() frame.Behavior {
	b, _ := frame.ParseBehavior(c.Frame.Behavior)
	return b
}

// Padding returns the frame padding
func (c *Config) Padding() core.Insets {
	p := c.Frame.Padding
	if len(p) != 4 {
		return core.Insets{}
	}
	return core.Insets{Top: p[0], Right: p[1], Bottom: p[2], Left: p[3]}
}

// NavConstants resolves the [navigation.<type>] tables
func (c *Config) NavConstants() (map[input.Type]frame.NavConstants, error) {
	out := make(map[input.Type]frame.NavConstants, len(c.Navigation))
	for name, nc := range c.Navigation {
		t, err := input.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("[navigation.%s] %w", name, err)
		}
		if nc.Step <= 0 || nc.RepeatStep <= 0 {
			return nil, fmt.Errorf("[navigation.%s] step and repeat_step must be positive", name)
		}
		out[t] = frame.NavConstants{Step: nc.Step, RepeatStep: nc.RepeatStep, RepeatDuration: nc.RepeatDuration}
	}
	return out, nil
}

// FrameOptions turns the configuration into frame options
// Orientation and behavior are left to the caller when a demo mixes several frames
func (c *Config) FrameOptions() []frame.Option {
	opts := []frame.Option{
		frame.WithAnimationDuration(c.Frame.Animation),
		frame.WithIndicator(c.Frame.Indicator),
	}
	nav, _ := c.NavConstants()
	for t, nc := range nav {
		opts = append(opts, frame.WithNavConstants(t, nc))
	}
	return opts
}

// KeyOverrides resolves [keys] and [runes] into a sparse override table
func (c *Config) KeyOverrides() (*input.KeyTable, error) {
	return input.Bindings{Keys: c.Keys, Runes: c.Runes}.KeyTable()
}

// KeyTable returns the default bindings with the overrides applied
func (c *Config) KeyTable() *input.KeyTable {
	override, err := c.KeyOverrides()
	if err != nil {
		return input.DefaultKeyTable()
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override)
}

// AudioConfig converts the [audio] table
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	ac.SetEffectVolumes(c.Audio.Effects)
	return ac
}
