package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/scrollframe/core"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[core.SoundType]float64
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundFocusChange:  0.6,
			core.SoundFocusError:   0.8,
			core.SoundFocusSidebar: 0.6,
			core.SoundClick:        0.4,
		},
	}
}

// Volume returns the effective gain of st
func (c *AudioConfig) Volume(st core.SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1
	}
	return clampUnit(v * c.MasterVolume)
}

// SetEffectVolumes applies volumes keyed by config name (focus, error, sidebar, click)
// Unknown names are ignored
func (c *AudioConfig) SetEffectVolumes(volumes map[string]float64) {
	for name, v := range volumes {
		if st, ok := soundNames[name]; ok {
			c.EffectVolumes[st] = clampUnit(v)
		}
	}
}

// Environment overrides, applied over file configuration
const (
	envEnabled = "SCROLLFRAME_AUDIO_ENABLED" // bool
	envVolume  = "SCROLLFRAME_MASTER_VOLUME" // 0-100
	envEffects = "SCROLLFRAME_SFX_VOLUMES"   // JSON object of name to 0-1
)

// LoadAudioConfig returns the defaults with environment overrides applied
func LoadAudioConfig() *AudioConfig {
	return DefaultAudioConfig().ApplyEnv()
}

// ApplyEnv overrides fields from the environment, malformed values are ignored
func (c *AudioConfig) ApplyEnv() *AudioConfig {
	if v, ok := os.LookupEnv(envEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Enabled = b
		}
	}
	if v, ok := os.LookupEnv(envVolume); ok {
		if pct, err := strconv.Atoi(v); err == nil {
			c.MasterVolume = clampUnit(float64(pct) / 100)
		}
	}
	if v, ok := os.LookupEnv(envEffects); ok && v != "" {
		effects := make(map[string]float64)
		if json.Unmarshal([]byte(v), &effects) == nil {
			c.SetEffectVolumes(effects)
		}
	}
	return c
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
