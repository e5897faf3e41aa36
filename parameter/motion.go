package parameter

// Organic Motion Field
const (
	// MotionAmplitudeBase keeps particles moving when all bands are silent
	MotionAmplitudeBase = 0.015

	// MotionAmplitudeGain scales displacement with the driving band
	MotionAmplitudeGain = 0.12

	// MotionSpatialFreq (k) couples anchor coordinates into the oscillator phase
	MotionSpatialFreq = 3.0

	// MotionJitterScale scales uniform noise by the jitter band
	MotionJitterScale = 0.03

	// MotionJitterThreshold is the jitter level below which no noise is added
	MotionJitterThreshold = 0.05
)

// Per-layer oscillator speed multipliers
const (
	InnerSpeed  = 1.0
	MiddleSpeed = 1.3
	CoreSpeed   = 1.6
)
