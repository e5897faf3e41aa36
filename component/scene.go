package component

import "github.com/gpbacay/Arcanus-Sphere/vmath"

// Bloom is the post-process glow requested from the renderer
type Bloom struct {
	Strength  float64
	Radius    float64
	Threshold float64
}

// Scene holds the modulator outputs that are not per-layer
type Scene struct {
	CoreColor vmath.Vec3F
	Bloom     Bloom
}
