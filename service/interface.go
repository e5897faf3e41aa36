package service

// Service is the lifecycle of a long-lived host subsystem: audio output, the tick scheduler
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) configures from parsed flags and config
//  3. Start() launches background work
//  4. Stop() halts and releases resources, idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies names services that must Init and Start before this one
	Dependencies() []string

	Init(args ...any) error
	Start() error
	Stop() error
}
