package physics

import (
	"math"

	"github.com/gpbacay/Arcanus-Sphere/component"
	"github.com/gpbacay/Arcanus-Sphere/parameter"
	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

// FieldParams drives the organic motion field of one layer for one tick
type FieldParams struct {
	// Intensity is the driving band value in [0, 1]
	Intensity float64
	// Speed multiplies elapsed time in every oscillator
	Speed float64

	AmplitudeBase float64
	AmplitudeGain float64
	SpatialFreq   float64
}

// JitterParams gates and scales the random component of the field
type JitterParams struct {
	Level     float64
	Scale     float64
	Threshold float64
}

// DefaultField returns field parameters from tuning constants for the given drive
func DefaultField(intensity, speed float64) FieldParams {
	return FieldParams{
		Intensity:     intensity,
		Speed:         speed,
		AmplitudeBase: parameter.MotionAmplitudeBase,
		AmplitudeGain: parameter.MotionAmplitudeGain,
		SpatialFreq:   parameter.MotionSpatialFreq,
	}
}

// DefaultJitter returns jitter parameters from tuning constants for the given level
func DefaultJitter(level float64) JitterParams {
	return JitterParams{
		Level:     level,
		Scale:     parameter.MotionJitterScale,
		Threshold: parameter.MotionJitterThreshold,
	}
}

// Amplitude is monotonically increasing in intensity with a non-zero floor
func Amplitude(intensity, base, gain float64) float64 {
	if intensity < 0 {
		intensity = 0
	}
	return base + gain*intensity
}

// Displacement is the periodic part of the field, a pure function of its inputs
func Displacement(anchor vmath.Vec3F, phase, t float64, p FieldParams) vmath.Vec3F {
	amp := Amplitude(p.Intensity, p.AmplitudeBase, p.AmplitudeGain)
	ts := t * p.Speed
	k := p.SpatialFreq

	return vmath.Vec3F{
		X: amp * math.Sin(ts+anchor.Y*k+phase),
		Y: amp * math.Cos(ts*0.8+anchor.Z*k+phase),
		Z: amp * math.Sin(ts*1.2+anchor.X*k+phase),
	}
}

// Jitter returns uniform noise in [-0.5, 0.5)^3 scaled by level*scale
// Below threshold it returns zero without consuming randomness
func Jitter(j JitterParams, r vmath.Rand) vmath.Vec3F {
	if j.Level <= j.Threshold {
		return vmath.Vec3F{}
	}
	s := j.Level * j.Scale
	return vmath.Vec3F{
		X: (r.Float64() - 0.5) * s,
		Y: (r.Float64() - 0.5) * s,
		Z: (r.Float64() - 0.5) * s,
	}
}

// ApplyField writes live = anchor + displacement (+ jitter) for every particle of the layer
func ApplyField(l *component.ParticleLayer, t float64, p FieldParams, j JitterParams, r vmath.Rand) {
	jitter := j.Level > j.Threshold
	for i := range l.Live {
		d := Displacement(l.AnchorAt(i), l.PhaseAt(i), t, p)
		if jitter {
			d = vmath.V3FAdd(d, Jitter(j, r))
		}
		l.Live[i] = vmath.V3FAdd(l.AnchorAt(i), d)
	}
}
