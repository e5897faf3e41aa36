package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// pulse shapes a stream with a raised-sine LFO: gain = floor + (1-floor)*(0.5+0.5*sin(2*pi*rate*t))^sharp
type pulse struct {
	streamer beep.Streamer
	sr       beep.SampleRate
	rate     float64
	floor    float64
	sharp    float64
	gain     float64
	pos      int
}

func (p *pulse) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = p.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(p.pos) / float64(p.sr)
		lfo := math.Pow(0.5+0.5*math.Sin(2*math.Pi*p.rate*t), p.sharp)
		env := p.gain * (p.floor + (1-p.floor)*lfo)
		samples[i][0] *= env
		samples[i][1] *= env
		p.pos++
	}
	return n, ok
}

func (p *pulse) Err() error { return p.streamer.Err() }

// demoVoice describes one partial of the demo signal
type demoVoice struct {
	freq  float64
	gain  float64
	rate  float64
	floor float64
	sharp float64
}

// bass thump, swelling mid pad, fluttering high partials
var demoVoices = []demoVoice{
	{freq: 55, gain: 0.35, rate: 2.0, floor: 0.0, sharp: 8},
	{freq: 110, gain: 0.2, rate: 2.0, floor: 0.1, sharp: 4},
	{freq: 660, gain: 0.12, rate: 0.25, floor: 0.2, sharp: 1},
	{freq: 1320, gain: 0.08, rate: 0.4, floor: 0.0, sharp: 2},
	{freq: 5280, gain: 0.05, rate: 3.0, floor: 0.0, sharp: 3},
	{freq: 8800, gain: 0.03, rate: 0.15, floor: 0.0, sharp: 1},
}

// NewDemoStreamer builds an endless synthetic signal that excites all three bands on different cycles
// Used when no audio file is given
func NewDemoStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	voices := make([]beep.Streamer, 0, len(demoVoices))
	for _, v := range demoVoices {
		if v.freq >= float64(sr)/2 {
			continue
		}
		tone, err := generators.SineTone(sr, v.freq)
		if err != nil {
			return nil, fmt.Errorf("demo tone %.0fHz: %w", v.freq, err)
		}
		voices = append(voices, &pulse{
			streamer: tone,
			sr:       sr,
			rate:     v.rate,
			floor:    v.floor,
			sharp:    v.sharp,
			gain:     v.gain,
		})
	}
	return beep.Mix(voices...), nil
}
