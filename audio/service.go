package audio

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/gpbacay/Arcanus-Sphere/parameter"
)

// Service owns the audio input of a session
// With a working output device the track plays through a Player and the analyzer taps it;
// without one, or with audio disabled, the same track is pulled silently through a Feed
type Service struct {
	cfg  *Config
	path string

	player *Player
	feed   *Feed

	// disabled is set when output is unavailable or turned off
	disabled atomic.Bool
	paused   bool
	label    string
}

// NewService plays path, or the synthetic demo when path is empty
func NewService(cfg *Config, path string) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Service{cfg: cfg, path: path}
}

func (s *Service) Name() string { return "audio" }

func (s *Service) Dependencies() []string { return nil }

// Init opens the device and loads the track
// args[0]: bool, start paused
// A missing device degrades to the silent feed; an unreadable track is an error
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		if paused, ok := args[0].(bool); ok {
			s.paused = paused
		}
	}

	s.label = "demo"
	if s.path != "" {
		s.label = filepath.Base(s.path)
	}

	if s.cfg.Enabled {
		p := NewPlayer(s.cfg)
		if err := p.Initialize(); err != nil {
			log.Printf("audio output unavailable, continuing silent: %v", err)
		} else if err := s.load(p); err != nil {
			p.Close()
			return err
		} else {
			s.player = p
			return nil
		}
	}

	s.disabled.Store(true)
	stream, rate, err := s.open()
	if err != nil {
		return err
	}
	s.feed = NewFeed(stream, rate, parameter.TickInterval)
	s.feed.SetPaused(true)
	return nil
}

func (s *Service) load(p *Player) error {
	if s.path == "" {
		rate := beep.SampleRate(s.cfg.SampleRate)
		demo, err := NewDemoStreamer(rate)
		if err != nil {
			return err
		}
		return p.LoadStreamer(demo, rate)
	}
	return p.Load(s.path)
}

func (s *Service) open() (beep.Streamer, beep.SampleRate, error) {
	if s.path == "" {
		rate := beep.SampleRate(s.cfg.SampleRate)
		demo, err := NewDemoStreamer(rate)
		return demo, rate, err
	}
	stream, format, err := Open(s.path)
	if err != nil {
		return nil, 0, err
	}
	return stream, format.SampleRate, nil
}

// Start begins playback unless Init asked for a paused start
func (s *Service) Start() error {
	if s.paused {
		return nil
	}
	_, err := s.SetPlaying(true)
	return err
}

func (s *Service) Stop() error {
	switch {
	case s.player != nil:
		return s.player.Close()
	case s.feed != nil:
		return s.feed.Close()
	}
	return nil
}

// Source is the spectrum input for the engine; nil before Init
func (s *Service) Source() SpectrumSource {
	switch {
	case s.player != nil:
		return s.player.Analyzer()
	case s.feed != nil:
		return s.feed
	}
	return nil
}

// Disabled reports whether the track is analyzed without output
func (s *Service) Disabled() bool {
	return s.disabled.Load()
}

// Label names the current source for display
func (s *Service) Label() string {
	return s.label
}

func (s *Service) Playing() bool {
	switch {
	case s.player != nil:
		return s.player.Playing()
	case s.feed != nil:
		return !s.feed.Paused()
	}
	return false
}

// SetPlaying switches transport state and returns the resulting state
func (s *Service) SetPlaying(playing bool) (bool, error) {
	switch {
	case s.player != nil:
		var err error
		if playing {
			err = s.player.Play()
		} else {
			err = s.player.Pause()
		}
		return s.player.Playing(), err
	case s.feed != nil:
		s.feed.SetPaused(!playing)
		return playing, nil
	}
	return false, ErrNoStream
}

// Toggle flips play/pause and returns the new playing state
func (s *Service) Toggle() (bool, error) {
	return s.SetPlaying(!s.Playing())
}

func (s *Service) Position() time.Duration {
	switch {
	case s.player != nil:
		return s.player.Position()
	case s.feed != nil:
		return s.feed.Position()
	}
	return 0
}

// SeekBy moves the playhead relative to its current position
// Unseekable sources such as the demo ignore it
func (s *Service) SeekBy(delta time.Duration) error {
	target := max(s.Position()+delta, 0)
	var err error
	switch {
	case s.player != nil:
		err = s.player.Seek(target)
	case s.feed != nil:
		err = s.feed.Seek(target)
	default:
		return ErrNoStream
	}
	if errors.Is(err, ErrNotSeekable) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("seek %v: %w", target, err)
	}
	return nil
}

// AdjustVolume changes output gain by delta and returns the new gain
func (s *Service) AdjustVolume(delta float64) float64 {
	if s.player == nil {
		return 0
	}
	s.player.SetVolume(s.player.Volume() + delta)
	return s.player.Volume()
}
