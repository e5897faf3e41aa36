package parameter

// Inner Shell
const (
	InnerCount     = 2000
	InnerRadius    = 0.6
	InnerThickness = 0.04

	// InnerHue / InnerSat / InnerVal seed the green shell palette (HSV, hue in degrees)
	InnerHue       = 135.0
	InnerSat       = 0.9
	InnerVal       = 0.75
	InnerHueJitter = 12.0
)

// Middle Shell
const (
	MiddleCount     = 3000
	MiddleRadius    = 1.0
	MiddleThickness = 0.08

	MiddleHue       = 275.0
	MiddleSat       = 0.85
	MiddleVal       = 0.9
	MiddleHueJitter = 20.0
)

// Core
const (
	CoreCount  = 800
	CoreRadius = 0.25

	CoreHue       = 30.0
	CoreSat       = 0.8
	CoreVal       = 1.0
	CoreHueJitter = 15.0
)

// Palette jitter applied to saturation and value per particle
const (
	PaletteSatJitter = 0.1
	PaletteValJitter = 0.15
)
