package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gpbacay/Arcanus-Sphere/component"
	"github.com/gpbacay/Arcanus-Sphere/constant"
	"github.com/gpbacay/Arcanus-Sphere/engine"
	"github.com/gpbacay/Arcanus-Sphere/parameter"
	"github.com/gpbacay/Arcanus-Sphere/status"
)

// LightningSystem runs the bolt automaton over the world's fixed slot pool
// Vocal intensity gates how many slots may be live; bass drives branching
type LightningSystem struct {
	cfg        LightningConfig
	coreRadius float64
	tipSeq     uint64

	statActive      *atomic.Int64
	statTips        *atomic.Int64
	statSpawned     *atomic.Int64
	statSkipped     *atomic.Int64
	statConnections *atomic.Int64
	statQuiescent   *atomic.Bool
	statVocal       *status.AtomicFloat
}

func NewLightningSystem(world *engine.World, cfg LightningConfig) (*LightningSystem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	reg := world.Status
	return &LightningSystem{
		cfg:             cfg,
		coreRadius:      parameter.CoreRadius,
		statActive:      reg.Ints.Get(status.KeyActive),
		statTips:        reg.Ints.Get(status.KeyTips),
		statSpawned:     reg.Ints.Get(status.KeySpawned),
		statSkipped:     reg.Ints.Get(status.KeySpawnSkipped),
		statConnections: reg.Ints.Get(status.KeyConnections),
		statQuiescent:   reg.Bools.Get(status.KeyQuiescent),
		statVocal:       reg.Floats.Get(status.KeyVocal),
	}, nil
}

func (s *LightningSystem) Priority() int {
	return constant.PriorityLightning
}

// ActiveConnections is the number of bolts the current vocal intensity asks for, capped by the pool
func (s *LightningSystem) ActiveConnections(vocal float64, capacity int) int {
	want := math.Floor(vocal * s.cfg.ConnectionGain)
	if want <= 0 {
		return 0
	}
	if want >= float64(capacity) {
		return capacity
	}
	return int(want)
}

func (s *LightningSystem) Update(world *engine.World, _ time.Duration) {
	vocal := world.Bands.VocalIntensity(s.cfg.TrebleWeight)
	quiescent := vocal < s.cfg.Threshold

	// Chains die with their bolts
	if quiescent && !world.Quiescent {
		world.Tips = world.Tips[:0]
	}
	world.SetQuiescent(quiescent)

	connections := s.ActiveConnections(vocal, len(world.Bolts))
	decay := s.cfg.Decay
	if quiescent {
		decay = s.cfg.ForcedDecay
	}

	activeCount := world.ActiveBolts()
	for i := range world.Bolts {
		b := &world.Bolts[i]

		if b.Active() {
			b.Life -= decay
			if b.Life <= 0 {
				b.Deactivate()
				activeCount--
				continue
			}
			s.resolve(world, b)
			continue
		}

		if quiescent || i >= connections || activeCount >= connections {
			continue
		}
		if s.spawn(world, b) {
			activeCount++
		}
	}

	s.statActive.Store(int64(activeCount))
	s.statTips.Store(int64(len(world.Tips)))
	s.statConnections.Store(int64(connections))
	s.statQuiescent.Store(quiescent)
	s.statVocal.Set(vocal)
}

// resolve refreshes geometry and fades opacity with remaining life
func (s *LightningSystem) resolve(world *engine.World, b *component.Bolt) {
	ResolveBolt(b, &world.Layers, s.coreRadius)
	b.Opacity = math.Pow(float64(b.Life)/float64(b.MaxLife), s.cfg.FadeExponent) * s.cfg.MaxOpacity
	b.Visible = true
}

// spawn fills an inactive slot from a tip; reports whether a bolt was created
// A failed attempt leaves the tip set untouched
func (s *LightningSystem) spawn(world *engine.World, b *component.Bolt) bool {
	r := world.Rand

	var src int
	if len(world.Tips) == 0 {
		if r.Float64() >= s.cfg.RootChance {
			return false
		}
		core := world.Layers[component.LayerCore]
		if core.Count() == 0 {
			s.statSkipped.Add(1)
			return false
		}
		s.pushTip(world, component.Tip{
			Index:             r.Intn(core.Count()),
			Layer:             component.LayerCore,
			RemainingBranches: 1 + r.Intn(s.cfg.RootBranchesMax),
		})
		src = len(world.Tips) - 1
	} else {
		src = r.Intn(len(world.Tips))
	}
	tip := world.Tips[src]

	endLayer := component.LayerInner
	if r.Float64() < s.cfg.MiddleBias {
		endLayer = component.LayerMiddle
	}
	target := world.Layers[endLayer]
	if target.Count() == 0 {
		s.statSkipped.Add(1)
		return false
	}
	endIndex := r.Intn(target.Count())
	life := s.cfg.LifeMin + r.Intn(s.cfg.LifeMax-s.cfg.LifeMin+1)

	*b = component.Bolt{
		Life:    life,
		MaxLife: life,
		Depth:   tip.ChainDepth + 1,
		Track: component.Track{
			StartIndex: tip.Index,
			StartLayer: tip.Layer,
			EndIndex:   endIndex,
			EndLayer:   endLayer,
		},
	}

	var child *component.Tip
	if tip.ChainDepth < s.cfg.MaxDepth {
		child = &component.Tip{
			Index:             endIndex,
			Layer:             endLayer,
			RemainingBranches: s.branches(world),
			ChainDepth:        tip.ChainDepth + 1,
		}
	}

	// Spend the source branch before inserting so swap-remove cannot move the child
	world.Tips[src].RemainingBranches--
	if world.Tips[src].RemainingBranches <= 0 {
		last := len(world.Tips) - 1
		world.Tips[src] = world.Tips[last]
		world.Tips = world.Tips[:last]
	}
	if child != nil {
		s.pushTip(world, *child)
	}

	s.resolve(world, b)
	s.statSpawned.Add(1)
	return true
}

// branches rolls the allowance of a new tip: two with bass-driven probability, else one
func (s *LightningSystem) branches(world *engine.World) int {
	p := math.Min(1, s.cfg.BranchBase+s.cfg.BranchBassGain*world.Bands.Bass)
	if world.Rand.Float64() < p {
		return 2
	}
	return 1
}

// pushTip appends a tip, replacing the oldest one when the set is at capacity
func (s *LightningSystem) pushTip(world *engine.World, t component.Tip) {
	s.tipSeq++
	t.Seq = s.tipSeq

	if len(world.Tips) < cap(world.Tips) {
		world.Tips = append(world.Tips, t)
		return
	}

	oldest := 0
	for i := range world.Tips {
		if world.Tips[i].Seq < world.Tips[oldest].Seq {
			oldest = i
		}
	}
	world.Tips[oldest] = t
}
