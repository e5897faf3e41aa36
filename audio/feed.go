package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// Feed drives an analyzer without an output device
// Every spectrum read pulls one block of samples, so the signal advances in step with the engine tick
type Feed struct {
	mu       sync.Mutex
	streamer beep.Streamer
	seeker   beep.StreamSeeker
	rate     beep.SampleRate
	analyzer *Analyzer
	block    [][2]float64
	paused   bool
	done     bool
	closed   bool
}

// NewFeed pulls rate.N(interval) samples from s per read
func NewFeed(s beep.Streamer, rate beep.SampleRate, interval time.Duration) *Feed {
	n := max(rate.N(interval), 1)
	seeker, _ := s.(beep.StreamSeeker)
	return &Feed{
		streamer: s,
		seeker:   seeker,
		rate:     rate,
		analyzer: NewAnalyzer(nil),
		block:    make([][2]float64, n),
	}
}

func (f *Feed) ByteFrequencyData(dst []byte) {
	f.mu.Lock()
	if !f.paused && !f.done {
		n, ok := f.streamer.Stream(f.block)
		f.analyzer.Write(f.block[:n])
		if !ok {
			f.done = true
			f.analyzer.Reset()
		}
	}
	f.mu.Unlock()

	f.analyzer.ByteFrequencyData(dst)
}

func (f *Feed) SetPaused(paused bool) {
	f.mu.Lock()
	f.paused = paused
	f.mu.Unlock()
}

func (f *Feed) Paused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paused
}

// Done reports whether the stream is exhausted
func (f *Feed) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Seek moves a seekable stream to d from the start, clamped to its bounds
func (f *Feed) Seek(d time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seeker == nil || f.closed {
		return ErrNotSeekable
	}
	pos := f.rate.N(d)
	pos = max(0, min(pos, f.seeker.Len()-1))
	if err := f.seeker.Seek(pos); err != nil {
		return err
	}
	f.done = false
	f.analyzer.Reset()
	return nil
}

// Position returns the playback position; zero for unseekable streams
func (f *Feed) Position() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seeker == nil {
		return 0
	}
	return f.rate.D(f.seeker.Position())
}

// Close releases a closable stream; reads afterwards report silence
func (f *Feed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	f.done = true
	f.analyzer.Reset()
	if c, ok := f.streamer.(beep.StreamCloser); ok {
		return c.Close()
	}
	return nil
}
