package parameter

import "time"

// Engine Timing
const (
	// TickInterval is the simulation tick interval (~60 Hz, display refresh)
	TickInterval = 16 * time.Millisecond

	// TicksPerSecond is the nominal tick rate used to convert tick-based lifetimes to seconds
	TicksPerSecond = 60

	// DefaultSeed seeds the engine RNG when no seed is configured
	DefaultSeed = 0x5eed_a7c4
)

// Spectrum Input
const (
	// FFTSize is the analyzer window length; SpectrumSize = FFTSize/2 bins
	FFTSize = 512

	// SpectrumSize is the fixed length of the per-tick magnitude buffer
	SpectrumSize = FFTSize / 2

	// AnalyzerSmoothing is the time constant blending the previous magnitude frame
	AnalyzerSmoothing = 0.8

	// AnalyzerMinDecibels / AnalyzerMaxDecibels map magnitudes onto byte range 0..255
	AnalyzerMinDecibels = -100.0
	AnalyzerMaxDecibels = -30.0
)

// Band ranges over spectrum bins, half-open [Start, End)
const (
	BassStart   = 0
	BassEnd     = 10
	MidStart    = 10
	MidEnd      = 80
	TrebleStart = 80
	TrebleEnd   = 200
)
