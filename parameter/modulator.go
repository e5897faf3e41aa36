package parameter

// Layer Scale: 1 + weighted bands
const (
	InnerScaleBass    = 0.35
	MiddleScaleMid    = 0.25
	MiddleScaleTreble = 0.1
	CoreScaleBass     = 0.6
)

// Layer Rotation (radians per tick): base rate + band-weighted term
const (
	InnerRotYBase = 0.002
	InnerRotYBass = 0.02
	InnerRotXBase = 0.001
	InnerRotXMid  = 0.005

	MiddleRotYBase   = -0.0015
	MiddleRotYMid    = -0.015
	MiddleRotZBase   = 0.001
	MiddleRotZTreble = 0.01

	CoreRotYBase = 0.004
	CoreRotYBass = 0.03
)

// Middle shell orbit (offset of the whole layer, scaled by 1 + mid)
const (
	MiddleOrbitRadius  = 0.05
	MiddleOrbitBob     = 0.03
	MiddleOrbitRate    = 0.5
	MiddleOrbitBobRate = 1.5
)

// Core Color: channel = base + weight*band
const (
	CoreColorBaseR   = 0.25
	CoreColorBaseG   = 0.1
	CoreColorBaseB   = 0.45
	CoreColorBassR   = 0.75
	CoreColorMidG    = 0.6
	CoreColorTrebleB = 0.55
)

// Bloom
const (
	BloomStrengthBase   = 1.2
	BloomStrengthBass   = 1.6
	BloomStrengthTreble = 0.6
	BloomRadiusBase     = 0.6
	BloomRadiusMid      = 0.4
	BloomThreshold      = 0.3
)
