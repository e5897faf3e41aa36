package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/gopxl/beep"
	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/gpbacay/Arcanus-Sphere/parameter"
)

// Analyzer taps a stereo stream and exposes a smoothed byte spectrum of the most recent window
// Stream runs on the speaker goroutine; ByteFrequencyData runs on the engine goroutine
type Analyzer struct {
	streamer beep.Streamer

	mu   sync.Mutex
	ring []float64
	head int
	fill int

	size      int
	smoothing float64
	minDB     float64
	maxDB     float64
	win       []float64
	frame     []float64
	smoothed  []float64
}

// NewAnalyzer wraps s with an FFT tap of parameter.FFTSize samples
func NewAnalyzer(s beep.Streamer) *Analyzer {
	return NewAnalyzerSize(s, parameter.FFTSize)
}

// NewAnalyzerSize wraps s with an FFT tap of size samples (rounded up to a power of two)
func NewAnalyzerSize(s beep.Streamer, size int) *Analyzer {
	n := 2
	for n < size {
		n <<= 1
	}
	return &Analyzer{
		streamer:  s,
		ring:      make([]float64, n),
		size:      n,
		smoothing: parameter.AnalyzerSmoothing,
		minDB:     parameter.AnalyzerMinDecibels,
		maxDB:     parameter.AnalyzerMaxDecibels,
		win:       window.Blackman(n),
		frame:     make([]float64, n),
		smoothed:  make([]float64, n/2),
	}
}

// Bins returns the number of frequency bins produced, half the window size
func (a *Analyzer) Bins() int { return a.size / 2 }

func (a *Analyzer) Stream(samples [][2]float64) (n int, ok bool) {
	if a.streamer == nil {
		return 0, false
	}
	n, ok = a.streamer.Stream(samples)
	a.push(samples[:n])
	return n, ok
}

func (a *Analyzer) Err() error {
	if a.streamer == nil {
		return nil
	}
	return a.streamer.Err()
}

// Write feeds mono-mixed samples without a wrapped stream
func (a *Analyzer) Write(samples [][2]float64) {
	a.push(samples)
}

func (a *Analyzer) push(samples [][2]float64) {
	a.mu.Lock()
	for _, s := range samples {
		a.ring[a.head] = (s[0] + s[1]) * 0.5
		a.head = (a.head + 1) % a.size
		if a.fill < a.size {
			a.fill++
		}
	}
	a.mu.Unlock()
}

// Reset clears buffered samples and smoothing history
func (a *Analyzer) Reset() {
	a.mu.Lock()
	clear(a.ring)
	clear(a.smoothed)
	a.head = 0
	a.fill = 0
	a.mu.Unlock()
}

// ByteFrequencyData writes the current spectrum into dst, one byte per bin
// Bins beyond Bins() are zeroed
func (a *Analyzer) ByteFrequencyData(dst []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Oldest sample first
	for i := 0; i < a.size; i++ {
		a.frame[i] = a.ring[(a.head+i)%a.size] * a.win[i]
	}

	spectrum := fft.FFTReal(a.frame)
	bins := a.size / 2
	scale := 1.0 / float64(a.size)
	span := a.maxDB - a.minDB

	for k := 0; k < bins; k++ {
		mag := cmplx.Abs(spectrum[k]) * scale
		a.smoothed[k] = a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag

		if k >= len(dst) {
			continue
		}
		db := math.Inf(-1)
		if a.smoothed[k] > 0 {
			db = 20 * math.Log10(a.smoothed[k])
		}
		v := 255 * (db - a.minDB) / span
		switch {
		case v <= 0 || math.IsNaN(v):
			dst[k] = 0
		case v >= 255:
			dst[k] = 255
		default:
			dst[k] = byte(v)
		}
	}
	for k := bins; k < len(dst); k++ {
		dst[k] = 0
	}
}
