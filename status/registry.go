package status

import (
	"slices"
	"strconv"
	"sync/atomic"
)

// Metric keys published by the engine
const (
	KeyEngineTicks   = "engine.ticks"
	KeyEngineState   = "engine.state"
	KeyEngineFPS     = "engine.fps"
	KeyBass          = "band.bass"
	KeyMid           = "band.mid"
	KeyTreble        = "band.treble"
	KeyVocal         = "band.vocal"
	KeyActive        = "lightning.active"
	KeyTips          = "lightning.tips"
	KeySpawned       = "lightning.spawned"
	KeySpawnSkipped  = "lightning.spawn_skipped"
	KeyQuiescent     = "lightning.quiescent"
	KeyConnections   = "lightning.connections"
	KeyAudioSource   = "audio.source"
	KeyAudioPosition = "audio.position"
)

// Registry is the central metrics facade
// Systems cache pointers at construction; Update loops write the atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Snapshot formats every metric, sorted by key
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, strconv.FormatBool(v.Load())})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Entry{k, strconv.FormatFloat(v.Get(), 'f', 2, 64)})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Entry{k, v.Load()})
	})
	slices.SortFunc(out, func(a, b Entry) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return out
}
