package system

import (
	"time"

	"github.com/gpbacay/Arcanus-Sphere/audio"
	"github.com/gpbacay/Arcanus-Sphere/constant"
	"github.com/gpbacay/Arcanus-Sphere/engine"
	"github.com/gpbacay/Arcanus-Sphere/parameter"
	"github.com/gpbacay/Arcanus-Sphere/status"
)

// BandSystem pulls the spectrum into the world buffer and derives the band sample
type BandSystem struct {
	ranges audio.BandRanges

	statBass   *status.AtomicFloat
	statMid    *status.AtomicFloat
	statTreble *status.AtomicFloat
}

// NewBandSystem validates ranges once; they are reused for every tick
func NewBandSystem(world *engine.World, ranges audio.BandRanges) (*BandSystem, error) {
	if err := ranges.Validate(parameter.SpectrumSize); err != nil {
		return nil, err
	}
	return &BandSystem{
		ranges:     ranges,
		statBass:   world.Status.Floats.Get(status.KeyBass),
		statMid:    world.Status.Floats.Get(status.KeyMid),
		statTreble: world.Status.Floats.Get(status.KeyTreble),
	}, nil
}

func (s *BandSystem) Priority() int {
	return constant.PriorityBand
}

func (s *BandSystem) Update(world *engine.World, _ time.Duration) {
	// No source is silence
	if world.Source == nil {
		clear(world.Spectrum[:])
	} else {
		world.Source.ByteFrequencyData(world.Spectrum[:])
	}

	world.Bands = audio.ExtractBands(world.Spectrum[:], s.ranges)

	s.statBass.Set(world.Bands.Bass)
	s.statMid.Set(world.Bands.Mid)
	s.statTreble.Set(world.Bands.Treble)
}
