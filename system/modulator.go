package system

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gpbacay/Arcanus-Sphere/component"
	"github.com/gpbacay/Arcanus-Sphere/constant"
	"github.com/gpbacay/Arcanus-Sphere/engine"
	"github.com/gpbacay/Arcanus-Sphere/parameter"
	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

// ModulatorSystem maps the band sample onto layer transforms, core color and bloom
// Rotation is accumulated on the layer transforms; everything else is recomputed every tick
type ModulatorSystem struct{}

func NewModulatorSystem() *ModulatorSystem {
	return &ModulatorSystem{}
}

func (s *ModulatorSystem) Priority() int {
	return constant.PriorityModulator
}

func (s *ModulatorSystem) Update(world *engine.World, _ time.Duration) {
	b := world.Bands
	for _, l := range world.Layers {
		if l == nil {
			continue
		}
		ModulateLayer(l, b, world.Elapsed)
		l.SyncTransform()
	}

	world.Scene.CoreColor = CoreColor(b)
	world.Scene.Bloom = BloomFor(b)
}

// ModulateLayer sets scale and position and advances rotation for one tick
func ModulateLayer(l *component.ParticleLayer, b component.BandSample, t float64) {
	tr := &l.Transform
	switch l.ID {
	case component.LayerInner:
		tr.Scale = 1 + parameter.InnerScaleBass*b.Bass
		tr.Rotation.Y += parameter.InnerRotYBase + parameter.InnerRotYBass*b.Bass
		tr.Rotation.X += parameter.InnerRotXBase + parameter.InnerRotXMid*b.Mid
	case component.LayerMiddle:
		tr.Scale = 1 + parameter.MiddleScaleMid*b.Mid + parameter.MiddleScaleTreble*b.Treble
		tr.Rotation.Y += parameter.MiddleRotYBase + parameter.MiddleRotYMid*b.Mid
		tr.Rotation.Z += parameter.MiddleRotZBase + parameter.MiddleRotZTreble*b.Treble
		tr.Position = MiddleOrbit(t, b.Mid)
	case component.LayerCore:
		tr.Scale = 1 + parameter.CoreScaleBass*b.Bass
		tr.Rotation.Y += parameter.CoreRotYBase + parameter.CoreRotYBass*b.Bass
	default:
		panic("modulator: unknown layer " + l.ID.String())
	}
}

// MiddleOrbit is the slow wobble of the middle shell, widened by mid energy
func MiddleOrbit(t, mid float64) vmath.Vec3F {
	a := t * parameter.MiddleOrbitRate
	return vmath.V3FScale(vmath.Vec3F{
		X: math.Cos(a) * parameter.MiddleOrbitRadius,
		Y: math.Sin(t*parameter.MiddleOrbitBobRate) * parameter.MiddleOrbitBob,
		Z: math.Sin(a) * parameter.MiddleOrbitRadius,
	}, 1+mid)
}

// CoreColor tints the core: red follows bass, green mid, blue treble
func CoreColor(b component.BandSample) vmath.Vec3F {
	c := colorful.Color{
		R: parameter.CoreColorBaseR + parameter.CoreColorBassR*b.Bass,
		G: parameter.CoreColorBaseG + parameter.CoreColorMidG*b.Mid,
		B: parameter.CoreColorBaseB + parameter.CoreColorTrebleB*b.Treble,
	}.Clamped()
	return vmath.Vec3F{X: c.R, Y: c.G, Z: c.B}
}

// BloomFor derives the post-process glow from the band sample
func BloomFor(b component.BandSample) component.Bloom {
	return component.Bloom{
		Strength:  parameter.BloomStrengthBase + parameter.BloomStrengthBass*b.Bass + parameter.BloomStrengthTreble*b.Treble,
		Radius:    parameter.BloomRadiusBase + parameter.BloomRadiusMid*b.Mid,
		Threshold: parameter.BloomThreshold,
	}
}
