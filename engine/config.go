package engine

import (
	"errors"
	"fmt"

	"github.com/gpbacay/Arcanus-Sphere/parameter"
)

// ErrInvalidCapacity is returned for a bolt pool or tip set smaller than one
var ErrInvalidCapacity = errors.New("capacity must be at least 1")

// Config sizes the world at construction; nothing here changes afterwards
type Config struct {
	Seed         uint64 `toml:"seed"`
	InnerCount   int    `toml:"inner_count"`
	MiddleCount  int    `toml:"middle_count"`
	CoreCount    int    `toml:"core_count"`
	BoltCapacity int    `toml:"bolt_capacity"`
	MaxTips      int    `toml:"max_tips"`
}

// DefaultConfig returns the tuned layer sizes and pool capacity
func DefaultConfig() Config {
	return Config{
		Seed:         parameter.DefaultSeed,
		InnerCount:   parameter.InnerCount,
		MiddleCount:  parameter.MiddleCount,
		CoreCount:    parameter.CoreCount,
		BoltCapacity: parameter.BoltCapacity,
		MaxTips:      parameter.MaxTips,
	}
}

// Validate checks capacities; particle counts are checked by layer construction
func (c Config) Validate() error {
	if c.BoltCapacity < 1 {
		return fmt.Errorf("bolt_capacity %d: %w", c.BoltCapacity, ErrInvalidCapacity)
	}
	if c.MaxTips < 1 {
		return fmt.Errorf("max_tips %d: %w", c.MaxTips, ErrInvalidCapacity)
	}
	return nil
}
