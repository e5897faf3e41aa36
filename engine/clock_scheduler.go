package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gpbacay/Arcanus-Sphere/core"
	"github.com/gpbacay/Arcanus-Sphere/render"
)

// ClockScheduler ticks the world on a fixed interval and hands each frame to the renderer
// Owns the world while running; the renderer is closed and released by Stop
type ClockScheduler struct {
	world *World
	clock *PausableClock

	mu       sync.Mutex
	renderer render.Renderer

	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// frameDone receives a non-blocking signal after every rendered frame
	frameDone chan struct{}
}

// NewClockScheduler creates a stopped scheduler
// The returned channel signals each completed frame and is never closed
func NewClockScheduler(world *World, clock *PausableClock, renderer render.Renderer, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	frameDone := make(chan struct{}, 1)
	cs := &ClockScheduler{
		world:        world,
		clock:        clock,
		renderer:     renderer,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		frameDone:    frameDone,
	}
	return cs, frameDone
}

// Name implements service.Service
func (cs *ClockScheduler) Name() string { return "scheduler" }

// Dependencies implements service.Service; ticking needs the spectrum source up first
func (cs *ClockScheduler) Dependencies() []string { return []string{"audio"} }

// Init implements service.Service
func (cs *ClockScheduler) Init(args ...any) error { return nil }

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() error {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
	return nil
}

// Stop halts ticking, then closes the renderer; safe to call more than once
func (cs *ClockScheduler) Stop() error {
	var err error
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}

		cs.mu.Lock()
		r := cs.renderer
		cs.renderer = nil
		cs.mu.Unlock()

		if r != nil {
			err = r.Close()
		}
	})
	return err
}

// Resize forwards a surface size change to the renderer; world state is untouched
func (cs *ClockScheduler) Resize(w, h int) {
	cs.mu.Lock()
	r := cs.renderer
	cs.mu.Unlock()
	if r != nil {
		r.Resize(w, h)
	}
}

// TickCount returns the number of ticks processed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = time.Now()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.clock.IsPaused() {
			// Frozen scene still renders so resize and HUD stay live
			cs.renderFrame()
			sleepDuration = cs.tickInterval * 2
		} else {
			now := time.Now()
			if !now.Before(cs.nextTickDeadline) {
				cs.processTick()

				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = now.Add(cs.tickInterval)
				}
			}
			sleepDuration = time.Until(cs.nextTickDeadline)
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}

// processTick advances the world and renders one frame
func (cs *ClockScheduler) processTick() {
	cs.world.Tick(cs.clock.Elapsed())
	cs.tickCount.Add(1)
	cs.renderFrame()
}

func (cs *ClockScheduler) renderFrame() {
	cs.mu.Lock()
	r := cs.renderer
	cs.mu.Unlock()
	if r == nil {
		return
	}

	if err := r.Render(cs.world.Frame()); err != nil {
		log.Printf("render: %v", err)
	}

	select {
	case cs.frameDone <- struct{}{}:
	default:
	}
}
