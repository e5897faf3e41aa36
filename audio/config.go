package audio

import (
	"os"
	"strconv"
)

// Config holds audio output settings
type Config struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
	BufferMs   int     `toml:"buffer_ms"`
}

// DefaultConfig returns default audio configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Volume:     0.7,
		SampleRate: 44100,
		BufferMs:   50,
	}
}

// LoadConfig returns defaults overridden by environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides fields from ARCANUS_* environment variables; malformed values are ignored
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("ARCANUS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("ARCANUS_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Volume = float64(val) / 100.0
			if c.Volume < 0 {
				c.Volume = 0
			}
			if c.Volume > 1 {
				c.Volume = 1
			}
		}
	}

	if sampleRate := os.Getenv("ARCANUS_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}

	if buffer := os.Getenv("ARCANUS_BUFFER_MS"); buffer != "" {
		if val, err := strconv.Atoi(buffer); err == nil && val > 0 {
			c.BufferMs = val
		}
	}
}
