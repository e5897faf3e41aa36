package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gpbacay/Arcanus-Sphere/audio"
	"github.com/gpbacay/Arcanus-Sphere/component"
	"github.com/gpbacay/Arcanus-Sphere/constant"
	"github.com/gpbacay/Arcanus-Sphere/parameter"
	"github.com/gpbacay/Arcanus-Sphere/render"
	"github.com/gpbacay/Arcanus-Sphere/status"
	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

// World is the complete engine state advanced by Tick
// Not safe for concurrent use; one goroutine owns it
type World struct {
	Layers [component.LayerCount]*component.ParticleLayer

	// Bolts is the fixed slot pool, indexed by slot
	Bolts []component.Bolt
	// Tips is the open chain-end set, capacity fixed at construction
	Tips []component.Tip

	// Spectrum is refilled from Source every tick
	Spectrum [parameter.SpectrumSize]byte
	Source   audio.SpectrumSource

	Bands     component.BandSample
	Scene     component.Scene
	Quiescent bool

	Rand   vmath.Rand
	Status *status.Registry

	// Elapsed is the clock reading of the current tick in seconds
	Elapsed   float64
	TickCount uint64

	systems     []System
	lastElapsed time.Duration
	frame       *render.Frame

	statTicks *atomic.Int64
}

// NewWorld builds the three layers and preallocates every per-tick buffer
func NewWorld(cfg Config, src audio.SpectrumSource) (*World, error) {
	return NewWorldWithRand(cfg, src, vmath.NewFastRand(cfg.Seed))
}

// NewWorldWithRand is NewWorld with a caller-supplied random source
func NewWorldWithRand(cfg Config, src audio.SpectrumSource, r vmath.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		Bolts:  make([]component.Bolt, cfg.BoltCapacity),
		Tips:   make([]component.Tip, 0, cfg.MaxTips),
		Source: src,
		Rand:   r,
		Status: status.NewRegistry(),
	}
	w.statTicks = w.Status.Ints.Get(status.KeyEngineTicks)

	specs := [component.LayerCount]struct {
		count int
		dist  component.Distribution
		pal   component.Palette
	}{
		component.LayerInner: {
			cfg.InnerCount,
			component.SphereSurface(parameter.InnerRadius, parameter.InnerThickness),
			component.Palette{
				Hue: parameter.InnerHue, Sat: parameter.InnerSat, Val: parameter.InnerVal,
				HueJitter: parameter.InnerHueJitter, SatJitter: parameter.PaletteSatJitter, ValJitter: parameter.PaletteValJitter,
			},
		},
		component.LayerMiddle: {
			cfg.MiddleCount,
			component.SphereSurface(parameter.MiddleRadius, parameter.MiddleThickness),
			component.Palette{
				Hue: parameter.MiddleHue, Sat: parameter.MiddleSat, Val: parameter.MiddleVal,
				HueJitter: parameter.MiddleHueJitter, SatJitter: parameter.PaletteSatJitter, ValJitter: parameter.PaletteValJitter,
			},
		},
		component.LayerCore: {
			cfg.CoreCount,
			component.SphereVolume(parameter.CoreRadius),
			component.Palette{
				Hue: parameter.CoreHue, Sat: parameter.CoreSat, Val: parameter.CoreVal,
				HueJitter: parameter.CoreHueJitter, SatJitter: parameter.PaletteSatJitter, ValJitter: parameter.PaletteValJitter,
			},
		},
	}

	for id, s := range specs {
		l, err := component.NewParticleLayer(component.LayerID(id), s.count, s.dist, s.pal, r)
		if err != nil {
			return nil, fmt.Errorf("build world: %w", err)
		}
		w.Layers[id] = l
	}

	w.frame = render.NewFrame(w.Layers, len(w.Bolts))
	return w, nil
}

// Layer returns the layer with the given id
func (w *World) Layer(id component.LayerID) *component.ParticleLayer {
	return w.Layers[id]
}

// AddSystem registers a system, keeping execution sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	return w.systems
}

// Tick advances the world to elapsed, the clock reading since start
// Live colors are reset after band extraction and before any system that highlights
func (w *World) Tick(elapsed time.Duration) {
	dt := elapsed - w.lastElapsed
	if dt < 0 {
		dt = 0
	}
	w.lastElapsed = elapsed
	w.Elapsed = elapsed.Seconds()
	w.TickCount++

	reset := false
	for _, s := range w.systems {
		if !reset && s.Priority() > constant.PriorityBand {
			w.resetColors()
			reset = true
		}
		s.Update(w, dt)
	}
	if !reset {
		w.resetColors()
	}

	w.statTicks.Store(int64(w.TickCount))
}

func (w *World) resetColors() {
	for _, l := range w.Layers {
		if l != nil {
			l.ResetColors()
		}
	}
}

// SetQuiescent records the automaton state, logging transitions
func (w *World) SetQuiescent(q bool) {
	if q != w.Quiescent && w.TickCount > 1 {
		if q {
			log.Printf("lightning: quiescent at tick %d", w.TickCount)
		} else {
			log.Printf("lightning: active at tick %d", w.TickCount)
		}
	}
	w.Quiescent = q
}

// ActiveBolts counts slots with remaining life
func (w *World) ActiveBolts() int {
	n := 0
	for i := range w.Bolts {
		if w.Bolts[i].Active() {
			n++
		}
	}
	return n
}

// Frame refills and returns the world's frame; valid until the next call
func (w *World) Frame() *render.Frame {
	f := w.frame
	f.Fill(w.Layers, w.Bolts)
	f.Tick = w.TickCount
	f.Elapsed = w.Elapsed
	f.Bands = w.Bands
	f.Quiescent = w.Quiescent
	f.CoreColor = w.Scene.CoreColor
	f.Bloom = w.Scene.Bloom
	return f
}
