package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is the beep resampler quality used when the source rate differs from output
const resampleQuality = 4

// Player owns the speaker and a single track routed through an Analyzer
// Chain: source -> ctrl -> analyzer -> volume -> speaker
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	rate        beep.SampleRate
	initialized bool

	stream   beep.StreamSeekCloser // nil for non-seekable sources
	ctrl     *beep.Ctrl
	analyzer *Analyzer
	volume   *effects.Volume
	srcRate  beep.SampleRate
}

// NewPlayer creates an idle player; Initialize opens the output device
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:      cfg,
		rate:     beep.SampleRate(cfg.SampleRate),
		analyzer: NewAnalyzer(nil),
	}
}

// Initialize opens the speaker at the configured rate and buffer length
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	buffer := p.rate.N(time.Duration(p.cfg.BufferMs) * time.Millisecond)
	if err := speaker.Init(p.rate, buffer); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.initialized = true
	return nil
}

// Analyzer returns the spectrum tap; it reports silence until a stream plays
func (p *Player) Analyzer() *Analyzer {
	return p.analyzer
}

// Open decodes the file at path, choosing the decoder by extension
// The caller closes the returned stream
func Open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	stream, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("%s: %w", path, err)
	}
	return stream, format, nil
}

// Load decodes the file at path and replaces the current track, paused
func (p *Player) Load(path string) error {
	stream, format, err := Open(path)
	if err != nil {
		return err
	}
	return p.attach(stream, stream, format.SampleRate)
}

// LoadStreamer installs an arbitrary stream at rate sr, paused
// Seek reports ErrNotSeekable for these unless s implements beep.StreamSeekCloser
func (p *Player) LoadStreamer(s beep.Streamer, sr beep.SampleRate) error {
	ssc, _ := s.(beep.StreamSeekCloser)
	return p.attach(s, ssc, sr)
}

func decode(rc io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(rc)
	case ".mp3":
		return mp3.Decode(rc)
	case ".flac":
		return flac.Decode(rc)
	case ".ogg", ".oga":
		return vorbis.Decode(rc)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func (p *Player) attach(s beep.Streamer, seekable beep.StreamSeekCloser, sr beep.SampleRate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		if seekable != nil {
			seekable.Close()
		}
		return ErrNotInitialized
	}

	speaker.Clear()
	p.closeStreamLocked()

	var src beep.Streamer = s
	if sr != p.rate {
		src = beep.Resample(resampleQuality, sr, p.rate, s)
	}

	p.stream = seekable
	p.srcRate = sr
	p.ctrl = &beep.Ctrl{Streamer: src, Paused: true}
	p.analyzer.Reset()
	p.analyzer.streamer = p.ctrl
	p.volume = newVolume(p.analyzer, p.cfg.Volume)

	speaker.Play(p.volume)
	return nil
}

// newVolume maps a linear 0..1 gain onto effects.Volume; zero is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, v float64) *effects.Volume {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v), Silent: false}
}

// Play resumes the current track
func (p *Player) Play() error {
	return p.setPaused(false)
}

// Pause halts the current track; the analyzer decays to silence via smoothing
func (p *Player) Pause() error {
	return p.setPaused(true)
}

func (p *Player) setPaused(paused bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return ErrNoStream
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
	return nil
}

// Toggle flips play/pause and returns the new playing state
func (p *Player) Toggle() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return false, ErrNoStream
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	playing := !p.ctrl.Paused
	speaker.Unlock()
	return playing, nil
}

// Playing reports whether a track is loaded and unpaused
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.ctrl.Paused
}

// Seek moves to d from the start of the track, clamped to its length
func (p *Player) Seek(d time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return ErrNoStream
	}
	if p.stream == nil {
		return ErrNotSeekable
	}

	pos := p.srcRate.N(d)
	if pos < 0 {
		pos = 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	if n := p.stream.Len(); pos >= n {
		pos = n - 1
	}
	if err := p.stream.Seek(pos); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	return nil
}

// Position returns the playback offset of a seekable track
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stream == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.srcRate.D(p.stream.Position())
}

// Duration returns the total length of a seekable track
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stream == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.srcRate.D(p.stream.Len())
}

// SetVolume sets linear output gain, clamped to [0, 1]
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	v = math.Max(0, math.Min(1, v))
	p.cfg.Volume = v
	if p.volume == nil {
		return
	}
	next := newVolume(nil, v)
	speaker.Lock()
	p.volume.Volume = next.Volume
	p.volume.Silent = next.Silent
	speaker.Unlock()
}

// Volume returns the linear output gain
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.Volume
}

// Close stops output and releases the current track
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	speaker.Clear()
	err := p.closeStreamLocked()
	speaker.Close()
	p.initialized = false
	return err
}

func (p *Player) closeStreamLocked() error {
	var err error
	if p.stream != nil {
		err = p.stream.Close()
	}
	p.stream = nil
	p.ctrl = nil
	p.volume = nil
	p.analyzer.streamer = nil
	return err
}
