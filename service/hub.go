package service

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
)

var (
	ErrDuplicate         = errors.New("service already registered")
	ErrUnknownDependency = errors.New("dependency not registered")
	ErrCycle             = errors.New("circular service dependency")
)

// Hub owns service instances and runs their lifecycle in dependency order
type Hub struct {
	mu       sync.Mutex
	services map[string]Service
	sorted   []string
	started  []string
}

func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds a service; the cached order is recomputed on the next InitAll
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	h.services[name] = svc
	h.sorted = nil
	return nil
}

func (h *Hub) Get(name string) (Service, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	svc, ok := h.services[name]
	return svc, ok
}

// Order returns the resolved initialization order
func (h *Hub) Order() ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.resolveLocked(); err != nil {
		return nil, err
	}
	return slices.Clone(h.sorted), nil
}

func (h *Hub) resolveLocked() error {
	if h.sorted != nil {
		return nil
	}
	order, err := h.topologicalSort()
	if err != nil {
		return err
	}
	h.sorted = order
	return nil
}

// InitAll passes args to every service in dependency order
// On failure, already-initialized services are stopped in reverse order
func (h *Hub) InitAll(args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.resolveLocked(); err != nil {
		return err
	}

	for i, name := range h.sorted {
		if err := h.services[name].Init(args...); err != nil {
			for j := i - 1; j >= 0; j-- {
				h.stopOne(h.sorted[j])
			}
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
	}
	return nil
}

// StartAll starts services in dependency order, rolling back on failure
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.resolveLocked(); err != nil {
		return err
	}

	h.started = h.started[:0]
	for _, name := range h.sorted {
		if err := h.services[name].Start(); err != nil {
			for i := len(h.started) - 1; i >= 0; i-- {
				h.stopOne(h.started[i])
			}
			h.started = h.started[:0]
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
	}
	return nil
}

// StopAll stops started services in reverse order; errors are logged, never returned
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.started) - 1; i >= 0; i-- {
		h.stopOne(h.started[i])
	}
	h.started = h.started[:0]
}

func (h *Hub) stopOne(name string) {
	if err := h.services[name].Stop(); err != nil {
		log.Printf("service %s stop: %v", name, err)
	}
}

// topologicalSort is Kahn's algorithm with names visited in sorted order, so ties resolve deterministically
func (h *Hub) topologicalSort() ([]string, error) {
	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	slices.Sort(names)

	inDegree := make(map[string]int, len(names))
	dependents := make(map[string][]string)
	for _, name := range names {
		for _, dep := range h.services[name].Dependencies() {
			if _, ok := h.services[dep]; !ok {
				return nil, fmt.Errorf("%w: %s needs %s", ErrUnknownDependency, name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for _, name := range names {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	result := make([]string, 0, len(names))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)
		for _, d := range dependents[name] {
			inDegree[d]--
			if inDegree[d] == 0 {
				queue = append(queue, d)
			}
		}
	}

	if len(result) != len(names) {
		return nil, ErrCycle
	}
	return result, nil
}
