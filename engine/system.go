package engine

import "time"

// System is one stage of the tick pipeline
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}
