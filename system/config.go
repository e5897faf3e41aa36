package system

import (
	"errors"
	"fmt"

	"github.com/gpbacay/Arcanus-Sphere/parameter"
)

// ErrInvalidTuning is returned for a tuning section that cannot drive the automaton
var ErrInvalidTuning = errors.New("invalid tuning")

// MotionConfig tunes the organic motion field
type MotionConfig struct {
	AmplitudeBase   float64 `toml:"amplitude_base"`
	AmplitudeGain   float64 `toml:"amplitude_gain"`
	SpatialFreq     float64 `toml:"spatial_freq"`
	JitterScale     float64 `toml:"jitter_scale"`
	JitterThreshold float64 `toml:"jitter_threshold"`
	InnerSpeed      float64 `toml:"inner_speed"`
	MiddleSpeed     float64 `toml:"middle_speed"`
	CoreSpeed       float64 `toml:"core_speed"`
}

func DefaultMotionConfig() MotionConfig {
	return MotionConfig{
		AmplitudeBase:   parameter.MotionAmplitudeBase,
		AmplitudeGain:   parameter.MotionAmplitudeGain,
		SpatialFreq:     parameter.MotionSpatialFreq,
		JitterScale:     parameter.MotionJitterScale,
		JitterThreshold: parameter.MotionJitterThreshold,
		InnerSpeed:      parameter.InnerSpeed,
		MiddleSpeed:     parameter.MiddleSpeed,
		CoreSpeed:       parameter.CoreSpeed,
	}
}

// LightningConfig tunes the bolt automaton; pool and tip capacities live in engine.Config
type LightningConfig struct {
	TrebleWeight    float64 `toml:"treble_weight"`
	Threshold       float64 `toml:"threshold"`
	ConnectionGain  float64 `toml:"connection_gain"`
	LifeMin         int     `toml:"life_min"`
	LifeMax         int     `toml:"life_max"`
	Decay           int     `toml:"decay"`
	ForcedDecay     int     `toml:"forced_decay"`
	MaxOpacity      float64 `toml:"max_opacity"`
	FadeExponent    float64 `toml:"fade_exponent"`
	MaxDepth        int     `toml:"max_depth"`
	RootChance      float64 `toml:"root_chance"`
	RootBranchesMax int     `toml:"root_branches_max"`
	BranchBase      float64 `toml:"branch_base"`
	BranchBassGain  float64 `toml:"branch_bass_gain"`
	MiddleBias      float64 `toml:"middle_bias"`
}

func DefaultLightningConfig() LightningConfig {
	return LightningConfig{
		TrebleWeight:    parameter.VocalTrebleWeight,
		Threshold:       parameter.ActivationThreshold,
		ConnectionGain:  parameter.ConnectionGain,
		LifeMin:         parameter.BoltLifeMin,
		LifeMax:         parameter.BoltLifeMax,
		Decay:           parameter.BoltDecay,
		ForcedDecay:     parameter.BoltForcedDecay,
		MaxOpacity:      parameter.BoltMaxOpacity,
		FadeExponent:    parameter.BoltFadeExponent,
		MaxDepth:        parameter.MaxChainDepth,
		RootChance:      parameter.RootSpawnChance,
		RootBranchesMax: parameter.RootBranchesMax,
		BranchBase:      parameter.BranchChanceBase,
		BranchBassGain:  parameter.BranchChanceBassGain,
		MiddleBias:      parameter.MiddleEndBias,
	}
}

// Validate rejects tunings that would stall or corrupt the automaton
func (c LightningConfig) Validate() error {
	switch {
	case c.LifeMin < 1:
		return fmt.Errorf("%w: life_min %d < 1", ErrInvalidTuning, c.LifeMin)
	case c.LifeMax < c.LifeMin:
		return fmt.Errorf("%w: life_max %d < life_min %d", ErrInvalidTuning, c.LifeMax, c.LifeMin)
	case c.Decay < 1 || c.ForcedDecay < 1:
		return fmt.Errorf("%w: decay steps must be >= 1", ErrInvalidTuning)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth %d < 0", ErrInvalidTuning, c.MaxDepth)
	case c.RootBranchesMax < 1:
		return fmt.Errorf("%w: root_branches_max %d < 1", ErrInvalidTuning, c.RootBranchesMax)
	case c.ConnectionGain < 0:
		return fmt.Errorf("%w: connection_gain %f < 0", ErrInvalidTuning, c.ConnectionGain)
	}
	return nil
}
