package render

import (
	"github.com/gpbacay/Arcanus-Sphere/component"
	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

// LayerFrame is one point cloud in layer-local space plus the transform placing it in the world
// Positions and Colors are packed xyz / rgb
type LayerFrame struct {
	ID        component.LayerID
	Positions []float32
	Colors    []float32
	Transform component.Transform
}

// BoltFrame places a unit +Y line primitive: centre, orientation and length
type BoltFrame struct {
	Visible     bool
	Position    vmath.Vec3F
	Orientation vmath.Quat
	Direction   vmath.Vec3F
	Length      float64
	Opacity     float64
}

// Frame is the complete output of one tick
// Buffers are allocated once and refilled; renderers must not retain them past Render
type Frame struct {
	Tick      uint64
	Elapsed   float64
	Bands     component.BandSample
	Quiescent bool
	Active    int

	Layers    [component.LayerCount]LayerFrame
	Bolts     []BoltFrame
	CoreColor vmath.Vec3F
	Bloom     component.Bloom
}

// NewFrame sizes buffers for the given layers and bolt capacity
func NewFrame(layers [component.LayerCount]*component.ParticleLayer, bolts int) *Frame {
	f := &Frame{Bolts: make([]BoltFrame, bolts)}
	for id, l := range layers {
		n := l.Count()
		f.Layers[id] = LayerFrame{
			ID:        component.LayerID(id),
			Positions: make([]float32, 3*n),
			Colors:    make([]float32, 3*n),
		}
	}
	return f
}

// Fill copies live state into the frame buffers
func (f *Frame) Fill(layers [component.LayerCount]*component.ParticleLayer, bolts []component.Bolt) {
	for id, l := range layers {
		lf := &f.Layers[id]
		if l == nil {
			continue
		}
		lf.Transform = l.Transform
		for i, p := range l.Live {
			lf.Positions[3*i] = float32(p.X)
			lf.Positions[3*i+1] = float32(p.Y)
			lf.Positions[3*i+2] = float32(p.Z)
		}
		for i, c := range l.LiveColor {
			lf.Colors[3*i] = float32(c.X)
			lf.Colors[3*i+1] = float32(c.Y)
			lf.Colors[3*i+2] = float32(c.Z)
		}
	}

	f.Active = 0
	for i := range bolts {
		b := &bolts[i]
		if !b.Active() || !b.Visible {
			f.Bolts[i] = BoltFrame{}
			continue
		}
		f.Active++
		f.Bolts[i] = BoltFrame{
			Visible:     true,
			Position:    b.Mid,
			Orientation: b.Orientation,
			Direction:   b.Dir,
			Length:      b.Length,
			Opacity:     b.Opacity,
		}
	}
}

// Point returns particle i of a layer frame as a vector
func (lf *LayerFrame) Point(i int) vmath.Vec3F {
	return vmath.Vec3F{
		X: float64(lf.Positions[3*i]),
		Y: float64(lf.Positions[3*i+1]),
		Z: float64(lf.Positions[3*i+2]),
	}
}

// Color returns the rgb of particle i
func (lf *LayerFrame) Color(i int) vmath.Vec3F {
	return vmath.Vec3F{
		X: float64(lf.Colors[3*i]),
		Y: float64(lf.Colors[3*i+1]),
		Z: float64(lf.Colors[3*i+2]),
	}
}

// Count returns the number of particles in the frame
func (lf *LayerFrame) Count() int {
	return len(lf.Positions) / 3
}

// Renderer consumes frames; implementations own their output surface
// Resize may be called from another goroutine than Render
type Renderer interface {
	Render(f *Frame) error
	Resize(w, h int)
	Close() error
}
