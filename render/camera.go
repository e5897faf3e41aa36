package render

import (
	"math"

	"github.com/gpbacay/Arcanus-Sphere/parameter"
	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

// Camera is a perspective eye orbiting the origin
type Camera struct {
	Distance  float64
	Focal     float64
	Pitch     float64
	Yaw       float64
	OrbitRate float64
	Zoom      float64
	// Aspect stretches x; 2 for terminal cells, 1 for square pixels
	Aspect float64
}

// DefaultCamera returns the preview camera for the given pixel aspect
func DefaultCamera(aspect float64) Camera {
	return Camera{
		Distance:  parameter.CameraDistance,
		Focal:     parameter.CameraFocal,
		Pitch:     parameter.CameraPitch,
		OrbitRate: parameter.CameraOrbitRate,
		Zoom:      parameter.CameraZoom,
		Aspect:    aspect,
	}
}

// View returns the world-to-eye rotation at the given elapsed seconds
func (c Camera) View(elapsed float64) vmath.Mat3 {
	return vmath.Mat3FromEuler(vmath.Vec3F{
		X: c.Pitch,
		Y: math.Mod(c.Yaw+elapsed*c.OrbitRate, 2*math.Pi),
	})
}

// Project maps a world point to integer screen coordinates in a w x h viewport
// ok is false when the point is behind the near plane or off screen
func (c Camera) Project(view *vmath.Mat3, p vmath.Vec3F, w, h int) (x, y int, depth float64, ok bool) {
	v := view.Apply(p)
	z := v.Z + c.Distance
	if z < parameter.CameraNear || w <= 0 || h <= 0 {
		return 0, 0, 0, false
	}

	k := c.Focal / z * float64(h) * c.Zoom
	fx := float64(w)/2 + v.X*k*c.Aspect
	fy := float64(h)/2 - v.Y*k

	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	if x < 0 || y < 0 || x >= w || y >= h {
		return x, y, z, false
	}
	return x, y, z, true
}
