// Package config loads the tuning file shared by the host binaries
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gpbacay/Arcanus-Sphere/audio"
	"github.com/gpbacay/Arcanus-Sphere/engine"
	"github.com/gpbacay/Arcanus-Sphere/parameter"
	"github.com/gpbacay/Arcanus-Sphere/system"
)

// ErrInvalidConfig wraps every validation failure with the offending field
var ErrInvalidConfig = errors.New("invalid config")

// RenderConfig holds preview settings
type RenderConfig struct {
	FPS       int     `toml:"fps"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	OrbitRate float64 `toml:"orbit_rate"`
}

// Config is the root of the tuning file
type Config struct {
	Scene     engine.Config          `toml:"scene"`
	Motion    system.MotionConfig    `toml:"motion"`
	Lightning system.LightningConfig `toml:"lightning"`
	Bands     audio.BandRanges       `toml:"bands"`
	Audio     audio.Config           `toml:"audio"`
	Render    RenderConfig           `toml:"render"`
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Scene:     engine.DefaultConfig(),
		Motion:    system.DefaultMotionConfig(),
		Lightning: system.DefaultLightningConfig(),
		Bands:     audio.DefaultBandRanges(),
		Audio:     *audio.DefaultConfig(),
		Render: RenderConfig{
			FPS:       parameter.TicksPerSecond,
			Width:     960,
			Height:    720,
			OrbitRate: parameter.CameraOrbitRate,
		},
	}
}

// Load decodes path over the defaults; an empty path returns the defaults
// Keys missing from the file keep their default values
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrInvalidConfig, undecoded[0])
	}
	return cfg, nil
}

// Save writes the config as TOML, creating parent directories
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ApplyEnv overrides fields from ARCANUS_* environment variables; malformed values are ignored
func (c *Config) ApplyEnv() {
	if seed := os.Getenv("ARCANUS_SEED"); seed != "" {
		if val, err := strconv.ParseUint(seed, 0, 64); err == nil {
			c.Scene.Seed = val
		}
	}

	if bolts := os.Getenv("ARCANUS_BOLTS"); bolts != "" {
		if val, err := strconv.Atoi(bolts); err == nil && val > 0 {
			c.Scene.BoltCapacity = val
		}
	}

	if fps := os.Getenv("ARCANUS_FPS"); fps != "" {
		if val, err := strconv.Atoi(fps); err == nil && val > 0 {
			c.Render.FPS = val
		}
	}

	c.Audio.ApplyEnv()
}

// TickInterval converts the configured frame rate to a scheduler interval
func (c *Config) TickInterval() time.Duration {
	if c.Render.FPS <= 0 {
		return parameter.TickInterval
	}
	return time.Second / time.Duration(c.Render.FPS)
}

// Settings returns the system tuning section
func (c *Config) Settings() system.Settings {
	return system.Settings{
		Bands:     c.Bands,
		Motion:    c.Motion,
		Lightning: c.Lightning,
	}
}

// Validate checks every section
func (c *Config) Validate() error {
	counts := []struct {
		name string
		n    int
	}{
		{"scene.inner_count", c.Scene.InnerCount},
		{"scene.middle_count", c.Scene.MiddleCount},
		{"scene.core_count", c.Scene.CoreCount},
	}
	for _, f := range counts {
		if f.n < 1 {
			return fmt.Errorf("%w: %s %d must be positive", ErrInvalidConfig, f.name, f.n)
		}
	}
	if err := c.Scene.Validate(); err != nil {
		return fmt.Errorf("%w: scene: %w", ErrInvalidConfig, err)
	}
	if err := c.Lightning.Validate(); err != nil {
		return fmt.Errorf("%w: lightning: %w", ErrInvalidConfig, err)
	}
	if err := c.Bands.Validate(parameter.SpectrumSize); err != nil {
		return fmt.Errorf("%w: bands: %w", ErrInvalidConfig, err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %.2f outside [0, 1]", ErrInvalidConfig, c.Audio.Volume)
	}
	if c.Audio.SampleRate < 1 || c.Audio.BufferMs < 1 {
		return fmt.Errorf("%w: audio.sample_rate and audio.buffer_ms must be positive", ErrInvalidConfig)
	}
	if c.Render.FPS < 1 || c.Render.FPS > 240 {
		return fmt.Errorf("%w: render.fps %d outside [1, 240]", ErrInvalidConfig, c.Render.FPS)
	}
	if c.Render.Width < 1 || c.Render.Height < 1 {
		return fmt.Errorf("%w: render size %dx%d", ErrInvalidConfig, c.Render.Width, c.Render.Height)
	}
	return nil
}
