package system

import (
	"github.com/gpbacay/Arcanus-Sphere/audio"
	"github.com/gpbacay/Arcanus-Sphere/engine"
)

// Settings bundles the tuning of every system in the tick pipeline
type Settings struct {
	Bands     audio.BandRanges
	Motion    MotionConfig
	Lightning LightningConfig
}

func DefaultSettings() Settings {
	return Settings{
		Bands:     audio.DefaultBandRanges(),
		Motion:    DefaultMotionConfig(),
		Lightning: DefaultLightningConfig(),
	}
}

// Register installs the band, modulator, motion and lightning systems on world
func Register(world *engine.World, s Settings) error {
	band, err := NewBandSystem(world, s.Bands)
	if err != nil {
		return err
	}
	lightning, err := NewLightningSystem(world, s.Lightning)
	if err != nil {
		return err
	}

	world.AddSystem(band)
	world.AddSystem(NewModulatorSystem())
	world.AddSystem(NewMotionSystem(s.Motion))
	world.AddSystem(lightning)
	return nil
}
