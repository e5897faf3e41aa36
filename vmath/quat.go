package vmath

import "math"

// Quat is a unit quaternion (X, Y, Z imaginary, W real)
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns the no-rotation quaternion
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromUnitVectors returns the shortest rotation taking unit vector from onto unit vector to
// Antiparallel inputs rotate π around an axis orthogonal to from
func QuatFromUnitVectors(from, to Vec3F) Quat {
	r := V3FDot(from, to) + 1

	var q Quat
	if r < 1e-8 {
		r = 0
		if math.Abs(from.X) > math.Abs(from.Z) {
			q = Quat{-from.Y, from.X, 0, r}
		} else {
			q = Quat{0, -from.Z, from.Y, r}
		}
	} else {
		c := V3FCross(from, to)
		q = Quat{c.X, c.Y, c.Z, r}
	}

	return q.Normalize()
}

// Normalize returns q scaled to unit length, zero quaternion becomes identity
func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if l == 0 {
		return QuatIdentity()
	}
	inv := 1 / l
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Rotate applies q to v
func (q Quat) Rotate(v Vec3F) Vec3F {
	// t = 2 * cross(q.xyz, v); v' = v + w*t + cross(q.xyz, t)
	u := Vec3F{q.X, q.Y, q.Z}
	t := V3FScale(V3FCross(u, v), 2)
	return V3FAdd(V3FAdd(v, V3FScale(t, q.W)), V3FCross(u, t))
}
