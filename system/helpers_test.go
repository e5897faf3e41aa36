package system

import (
	"testing"
	"time"

	"github.com/gpbacay/Arcanus-Sphere/audio"
	"github.com/gpbacay/Arcanus-Sphere/engine"
	"github.com/gpbacay/Arcanus-Sphere/parameter"
	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

// ScriptedRand replays fixed values, then falls back to a seeded generator
type ScriptedRand struct {
	Floats []float64
	Ints   []int
	next   *vmath.FastRand
}

func NewScriptedRand(floats []float64, ints []int) *ScriptedRand {
	return &ScriptedRand{Floats: floats, Ints: ints, next: vmath.NewFastRand(99)}
}

func (r *ScriptedRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return r.next.Float64()
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}

func (r *ScriptedRand) Intn(n int) int {
	if len(r.Ints) == 0 {
		return r.next.Intn(n)
	}
	v := r.Ints[0]
	r.Ints = r.Ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func smallConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.InnerCount = 64
	cfg.MiddleCount = 96
	cfg.CoreCount = 32
	return cfg
}

// newTestWorld builds a small world with every system registered
func newTestWorld(t *testing.T, cfg engine.Config, src audio.SpectrumSource) *engine.World {
	t.Helper()
	w, err := engine.NewWorld(cfg, src)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if err := Register(w, DefaultSettings()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return w
}

// fixedSource writes v into bins [from, to)
func fixedSource(from, to int, v byte) audio.SpectrumSource {
	return audio.SourceFunc(func(dst []byte) {
		clear(dst)
		for i := from; i < to && i < len(dst); i++ {
			dst[i] = v
		}
	})
}

// switchSource delegates to a replaceable source
type switchSource struct {
	src audio.SpectrumSource
}

func (s *switchSource) ByteFrequencyData(dst []byte) {
	if s.src == nil {
		clear(dst)
		return
	}
	s.src.ByteFrequencyData(dst)
}

func tickN(w *engine.World, n int, each func()) {
	for i := 0; i < n; i++ {
		w.Tick(time.Duration(w.TickCount+1) * parameter.TickInterval)
		if each != nil {
			each()
		}
	}
}

// endTargets marks particles that are the end of an active bolt
func endTargets(w *engine.World) map[[2]int]bool {
	m := make(map[[2]int]bool)
	for i := range w.Bolts {
		b := &w.Bolts[i]
		if b.Active() {
			m[[2]int{int(b.Track.EndLayer), b.Track.EndIndex}] = true
		}
	}
	return m
}

func loudVocal() audio.SpectrumSource {
	return fixedSource(parameter.MidStart, parameter.TrebleEnd, 255)
}

var _ vmath.Rand = (*ScriptedRand)(nil)
