package component

import (
	"errors"
	"fmt"
	"math"

	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

// ErrInvalidParticleCount is returned when a layer is constructed with a non-positive particle count
var ErrInvalidParticleCount = errors.New("particle count must be positive")

// LayerID identifies one particle shell
type LayerID uint8

const (
	LayerInner LayerID = iota
	LayerMiddle
	LayerCore
	LayerCount
)

func (id LayerID) String() string {
	switch id {
	case LayerInner:
		return "inner"
	case LayerMiddle:
		return "middle"
	case LayerCore:
		return "core"
	default:
		return fmt.Sprintf("layer(%d)", uint8(id))
	}
}

// Transform is the layer-level placement composed on top of per-particle displacement
// Rotation is Euler XYZ in radians
type Transform struct {
	Position vmath.Vec3F
	Rotation vmath.Vec3F
	Scale    float64
}

// Distribution samples one rest position
type Distribution func(r vmath.Rand) vmath.Vec3F

// SphereSurface distributes points uniformly over a spherical shell of given radius
// thickness spreads points radially around the radius
func SphereSurface(radius, thickness float64) Distribution {
	return func(r vmath.Rand) vmath.Vec3F {
		theta := r.Float64() * 2 * math.Pi
		phi := math.Acos(2*r.Float64() - 1)
		rad := radius + (r.Float64()-0.5)*thickness
		return vmath.Vec3F{
			X: rad * math.Sin(phi) * math.Cos(theta),
			Y: rad * math.Sin(phi) * math.Sin(theta),
			Z: rad * math.Cos(phi),
		}
	}
}

// SphereVolume distributes points uniformly inside a ball
func SphereVolume(radius float64) Distribution {
	surface := SphereSurface(1, 0)
	return func(r vmath.Rand) vmath.Vec3F {
		dir := surface(r)
		return vmath.V3FScale(dir, radius*math.Cbrt(r.Float64()))
	}
}

// ParticleLayer is one point cloud: immutable anchors and phases plus per-tick live state
type ParticleLayer struct {
	ID LayerID

	// Live positions in layer-local space, rewritten every tick by the motion field
	Live []vmath.Vec3F
	// LiveColor is reset from the base colors at the start of every tick
	LiveColor []vmath.Vec3F

	Transform Transform

	anchor    []vmath.Vec3F
	phase     []float64
	baseColor []vmath.Vec3F

	// Rotation matrix cached from Transform.Rotation by SyncTransform
	rot vmath.Mat3
}

// NewParticleLayer allocates all per-particle arrays once and samples anchors, phases and base colors
func NewParticleLayer(id LayerID, count int, dist Distribution, pal Palette, r vmath.Rand) (*ParticleLayer, error) {
	if count <= 0 {
		return nil, fmt.Errorf("layer %s: %w (got %d)", id, ErrInvalidParticleCount, count)
	}

	l := &ParticleLayer{
		ID:        id,
		Live:      make([]vmath.Vec3F, count),
		LiveColor: make([]vmath.Vec3F, count),
		Transform: Transform{Scale: 1},
		anchor:    make([]vmath.Vec3F, count),
		phase:     make([]float64, count),
		baseColor: make([]vmath.Vec3F, count),
		rot:       vmath.Mat3Identity(),
	}

	for i := 0; i < count; i++ {
		l.anchor[i] = dist(r)
		l.phase[i] = r.Float64() * 2 * math.Pi
		l.baseColor[i] = pal.Sample(r)
	}
	copy(l.Live, l.anchor)
	copy(l.LiveColor, l.baseColor)

	return l, nil
}

// Count returns the number of particles, zero for an unallocated layer
func (l *ParticleLayer) Count() int {
	if l == nil {
		return 0
	}
	return len(l.anchor)
}

func (l *ParticleLayer) AnchorAt(i int) vmath.Vec3F { return l.anchor[i] }

func (l *ParticleLayer) PhaseAt(i int) float64 { return l.phase[i] }

func (l *ParticleLayer) BaseColorAt(i int) vmath.Vec3F { return l.baseColor[i] }

// ResetColors restores every live color to its base color
func (l *ParticleLayer) ResetColors() {
	copy(l.LiveColor, l.baseColor)
}

// SyncTransform refreshes the cached rotation matrix, call once per tick after rotation changes
func (l *ParticleLayer) SyncTransform() {
	l.rot = vmath.Mat3FromEuler(l.Transform.Rotation)
}

// ToWorld maps a layer-local point into world space: position + R * (scale * p)
func (l *ParticleLayer) ToWorld(p vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FAdd(l.Transform.Position, l.rot.Apply(vmath.V3FScale(p, l.Transform.Scale)))
}

// WorldPoint returns the world-space live position of particle i
func (l *ParticleLayer) WorldPoint(i int) vmath.Vec3F {
	return l.ToWorld(l.Live[i])
}
