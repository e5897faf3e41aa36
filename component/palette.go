package component

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

// Palette generates per-particle base colors around an HSV center
type Palette struct {
	Hue, Sat, Val float64 // hue in degrees

	HueJitter, SatJitter, ValJitter float64
}

// Sample returns one jittered RGB color in [0, 1]
func (p Palette) Sample(r vmath.Rand) vmath.Vec3F {
	h := math.Mod(p.Hue+(r.Float64()*2-1)*p.HueJitter+360, 360)
	s := vmath.Clamp01(p.Sat + (r.Float64()*2-1)*p.SatJitter)
	v := vmath.Clamp01(p.Val + (r.Float64()*2-1)*p.ValJitter)

	c := colorful.Hsv(h, s, v).Clamped()
	return vmath.Vec3F{X: c.R, Y: c.G, Z: c.B}
}
