package render

import (
	"github.com/gpbacay/Arcanus-Sphere/component"
	"github.com/gpbacay/Arcanus-Sphere/parameter"
	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

var boltColor = vmath.Vec3F{X: parameter.BoltColor[0], Y: parameter.BoltColor[1], Z: parameter.BoltColor[2]}

// Rasterizer splats a frame into a canvas through a camera
type Rasterizer struct {
	Camera    Camera
	PointGain float64
	BoltGain  float64
	canvas    *Canvas
}

func NewRasterizer(cam Camera, pointGain float64, w, h int) *Rasterizer {
	return &Rasterizer{
		Camera:    cam,
		PointGain: pointGain,
		BoltGain:  parameter.BoltGain,
		canvas:    NewCanvas(w, h),
	}
}

func (r *Rasterizer) Canvas() *Canvas {
	return r.canvas
}

// Resize is a no-op when dimensions are unchanged
func (r *Rasterizer) Resize(w, h int) {
	if w == r.canvas.W && h == r.canvas.H {
		return
	}
	r.canvas.Resize(w, h)
}

// LayerToWorld applies a layer transform: rotate(scale * p) + position
func LayerToWorld(m *vmath.Mat3, t component.Transform, p vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FAdd(m.Apply(vmath.V3FScale(p, t.Scale)), t.Position)
}

// BoltEnds recovers the segment endpoints from centre, direction and length
func BoltEnds(b *BoltFrame) (vmath.Vec3F, vmath.Vec3F) {
	half := vmath.V3FScale(b.Direction, b.Length/2)
	return vmath.V3FSub(b.Position, half), vmath.V3FAdd(b.Position, half)
}

// Draw clears the canvas and renders layers, bolts and bloom
func (r *Rasterizer) Draw(f *Frame) {
	c := r.canvas
	c.Clear()
	w, h := c.W, c.H
	view := r.Camera.View(f.Elapsed)

	for id := range f.Layers {
		lf := &f.Layers[id]
		m := vmath.Mat3FromEuler(lf.Transform.Rotation)
		core := lf.ID == component.LayerCore

		for i := 0; i < lf.Count(); i++ {
			world := LayerToWorld(&m, lf.Transform, lf.Point(i))
			x, y, _, ok := r.Camera.Project(&view, world, w, h)
			if !ok {
				continue
			}
			col := lf.Color(i)
			if core {
				col = vmath.V3FLerp(col, f.CoreColor, parameter.CoreTint)
			}
			c.Add(x, y, col, r.PointGain)
		}
	}

	for i := range f.Bolts {
		b := &f.Bolts[i]
		if !b.Visible || b.Opacity <= 0 {
			continue
		}
		a, e := BoltEnds(b)
		x0, y0, d0, ok0 := r.Camera.Project(&view, a, w, h)
		x1, y1, d1, ok1 := r.Camera.Project(&view, e, w, h)
		// Partially visible strokes are clipped per cell by Add; behind-eye ends report zero depth
		if (!ok0 && !ok1) || d0 == 0 || d1 == 0 {
			continue
		}
		c.Line(x0, y0, x1, y1, boltColor, b.Opacity*r.BoltGain)
	}

	c.Bloom(f.Bloom)
}
