package vmath

import "math"

// Mat3 is a row-major 3x3 rotation matrix
type Mat3 [9]float64

// Mat3Identity returns the identity rotation
func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mat3FromEuler builds R = Rx * Ry * Rz, matching an intrinsic XYZ Euler order
// Angles in radians
func Mat3FromEuler(e Vec3F) Mat3 {
	a, b := math.Cos(e.X), math.Sin(e.X)
	c, d := math.Cos(e.Y), math.Sin(e.Y)
	f, g := math.Cos(e.Z), math.Sin(e.Z)

	ae, af, be, bf := a*f, a*g, b*f, b*g

	return Mat3{
		c * f, -c * g, d,
		af + be*d, ae - bf*d, -b * c,
		bf - ae*d, be + af*d, a * c,
	}
}

// Apply rotates v by m
func (m *Mat3) Apply(v Vec3F) Vec3F {
	return Vec3F{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}
