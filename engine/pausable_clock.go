package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock measures elapsed engine time, excluding paused intervals
// Paused together with audio playback so motion freezes with the track
type PausableClock struct {
	mu sync.RWMutex

	source    TimeSource
	startTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock starts a running clock on the system time
func NewPausableClock() *PausableClock {
	return NewPausableClockWithSource(NewTimeProvider())
}

// NewPausableClockWithSource starts a running clock on src
func NewPausableClockWithSource(src TimeSource) *PausableClock {
	return &PausableClock{
		source:    src,
		startTime: src.Now(),
	}
}

// Elapsed returns time since start minus all paused time; frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.source.Now()
	if pc.isPaused.Load() {
		now = pc.pauseStartTime
	}
	return now.Sub(pc.startTime) - pc.totalPausedTime
}

// Pause stops time advancement; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.source.Now()
	}
}

// Resume continues time advancement; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused.CompareAndSwap(true, false) {
		pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
}

// SetPaused pauses or resumes to match paused
func (pc *PausableClock) SetPaused(paused bool) {
	if paused {
		pc.Pause()
	} else {
		pc.Resume()
	}
}

func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
