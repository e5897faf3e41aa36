package system

import (
	"time"

	"github.com/gpbacay/Arcanus-Sphere/component"
	"github.com/gpbacay/Arcanus-Sphere/constant"
	"github.com/gpbacay/Arcanus-Sphere/engine"
	"github.com/gpbacay/Arcanus-Sphere/physics"
)

// MotionSystem rewrites every live position from anchors through the organic motion field
type MotionSystem struct {
	cfg MotionConfig
}

func NewMotionSystem(cfg MotionConfig) *MotionSystem {
	return &MotionSystem{cfg: cfg}
}

func (s *MotionSystem) Priority() int {
	return constant.PriorityMotion
}

func (s *MotionSystem) Update(world *engine.World, _ time.Duration) {
	for _, l := range world.Layers {
		if l == nil {
			continue
		}
		field, jitter := s.Drive(l.ID, world.Bands)
		physics.ApplyField(l, world.Elapsed, field, jitter, world.Rand)
	}
}

// Drive selects the intensity band, speed and jitter band of a layer
func (s *MotionSystem) Drive(id component.LayerID, b component.BandSample) (physics.FieldParams, physics.JitterParams) {
	var intensity, speed, jitter float64
	switch id {
	case component.LayerInner:
		intensity, speed, jitter = b.Bass, s.cfg.InnerSpeed, b.Treble
	case component.LayerMiddle:
		intensity, speed, jitter = b.Mid, s.cfg.MiddleSpeed, b.Treble
	case component.LayerCore:
		intensity, speed, jitter = b.Bass, s.cfg.CoreSpeed, b.Mid
	default:
		panic("motion: unknown layer " + id.String())
	}

	field := physics.FieldParams{
		Intensity:     intensity,
		Speed:         speed,
		AmplitudeBase: s.cfg.AmplitudeBase,
		AmplitudeGain: s.cfg.AmplitudeGain,
		SpatialFreq:   s.cfg.SpatialFreq,
	}
	jp := physics.JitterParams{
		Level:     jitter,
		Scale:     s.cfg.JitterScale,
		Threshold: s.cfg.JitterThreshold,
	}
	return field, jp
}
