package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used for particle positions, colors and world-space bolt geometry
type Vec3F struct {
	X, Y, Z float64
}

// UnitY is the rest axis of line primitives handed to the renderer
var UnitY = Vec3F{0, 1, 0}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FNormalize returns the unit vector of v, zero vector stays zero
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FLerp interpolates a→b by t without clamping
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FMul is the component-wise product, used for non-uniform scale
func V3FMul(a, b Vec3F) Vec3F {
	return Vec3F{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// V3FSplat returns a vector with all components set to s
func V3FSplat(s float64) Vec3F {
	return Vec3F{s, s, s}
}
