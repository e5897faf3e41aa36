package component

import (
	"errors"
	"math"
	"testing"

	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

var testPalette = Palette{Hue: 120, Sat: 0.8, Val: 0.8, HueJitter: 10, SatJitter: 0.1, ValJitter: 0.1}

func TestNewParticleLayerRejectsNonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1, -500} {
		l, err := NewParticleLayer(LayerInner, n, SphereSurface(1, 0), testPalette, vmath.NewFastRand(1))
		if !errors.Is(err, ErrInvalidParticleCount) {
			t.Errorf("Expected ErrInvalidParticleCount for count %d, got %v", n, err)
		}
		if l != nil {
			t.Errorf("Expected nil layer for count %d", n)
		}
	}
}

func TestSphereSurfaceDistribution(t *testing.T) {
	l, err := NewParticleLayer(LayerMiddle, 500, SphereSurface(1.0, 0.1), testPalette, vmath.NewFastRand(3))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if l.Count() != 500 {
		t.Fatalf("Expected 500 particles, got %d", l.Count())
	}

	for i := 0; i < l.Count(); i++ {
		r := vmath.V3FMag(l.AnchorAt(i))
		if r < 0.95-1e-9 || r > 1.05+1e-9 {
			t.Fatalf("Particle %d radius %f outside shell", i, r)
		}
		p := l.PhaseAt(i)
		if p < 0 || p >= 2*math.Pi {
			t.Fatalf("Particle %d phase %f outside [0, 2π)", i, p)
		}
		c := l.BaseColorAt(i)
		if c.X < 0 || c.X > 1 || c.Y < 0 || c.Y > 1 || c.Z < 0 || c.Z > 1 {
			t.Fatalf("Particle %d color %+v outside unit cube", i, c)
		}
	}
}

func TestSphereVolumeDistribution(t *testing.T) {
	l, err := NewParticleLayer(LayerCore, 300, SphereVolume(0.25), testPalette, vmath.NewFastRand(9))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := 0; i < l.Count(); i++ {
		if r := vmath.V3FMag(l.AnchorAt(i)); r > 0.25+1e-9 {
			t.Fatalf("Particle %d radius %f outside volume", i, r)
		}
	}
}

func TestResetColors(t *testing.T) {
	l, _ := NewParticleLayer(LayerInner, 10, SphereSurface(1, 0), testPalette, vmath.NewFastRand(5))
	for i := range l.LiveColor {
		l.LiveColor[i] = vmath.Vec3F{X: 1, Y: 1, Z: 1}
	}
	l.ResetColors()
	for i := range l.LiveColor {
		if l.LiveColor[i] != l.BaseColorAt(i) {
			t.Errorf("Expected live color %d reset to base", i)
		}
	}
}

func TestWorldPointComposesTransform(t *testing.T) {
	l, _ := NewParticleLayer(LayerInner, 1, SphereSurface(1, 0), testPalette, vmath.NewFastRand(5))
	l.Live[0] = vmath.Vec3F{X: 1}
	l.Transform = Transform{
		Position: vmath.Vec3F{Y: 2},
		Rotation: vmath.Vec3F{Z: math.Pi / 2},
		Scale:    3,
	}
	l.SyncTransform()

	got := l.WorldPoint(0)
	want := vmath.Vec3F{X: 0, Y: 5, Z: 0}
	if vmath.V3FMag(vmath.V3FSub(got, want)) > 1e-9 {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestZeroLayerCount(t *testing.T) {
	var nilLayer *ParticleLayer
	if nilLayer.Count() != 0 {
		t.Error("Expected nil layer count 0")
	}
	empty := &ParticleLayer{ID: LayerMiddle}
	if empty.Count() != 0 {
		t.Error("Expected empty layer count 0")
	}
}

func TestLayerIDString(t *testing.T) {
	names := map[LayerID]string{LayerInner: "inner", LayerMiddle: "middle", LayerCore: "core"}
	for id, name := range names {
		if id.String() != name {
			t.Errorf("Expected %s, got %s", name, id.String())
		}
	}
}

func TestBandSampleClampedAndVocal(t *testing.T) {
	b := BandSample{Bass: 1.4, Mid: -0.2, Treble: 0.5}.Clamped()
	if b.Bass != 1 || b.Mid != 0 || b.Treble != 0.5 {
		t.Errorf("Unexpected clamp result %+v", b)
	}
	if v := b.VocalIntensity(0.6); math.Abs(v-0.3) > 1e-12 {
		t.Errorf("Expected vocal 0.3, got %f", v)
	}
}

func TestPaletteSample(t *testing.T) {
	pure := Palette{Hue: 120, Sat: 1, Val: 1}
	c := pure.Sample(vmath.NewFastRand(1))
	if math.Abs(c.X) > 1e-9 || math.Abs(c.Y-1) > 1e-9 || math.Abs(c.Z) > 1e-9 {
		t.Errorf("Expected pure green, got %+v", c)
	}

	r := vmath.NewFastRand(9)
	for i := 0; i < 200; i++ {
		c := testPalette.Sample(r)
		for _, ch := range []float64{c.X, c.Y, c.Z} {
			if ch < 0 || ch > 1 {
				t.Fatalf("Expected channels in [0,1], got %+v", c)
			}
		}
		if c.Y < c.X || c.Y < c.Z {
			t.Errorf("Expected green dominant, got %+v", c)
		}
	}
}
