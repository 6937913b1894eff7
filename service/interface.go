// Package service defines the lifecycle shared by optional background subsystems.
package service

// Service defines the lifecycle interface for optional subsystems
// such as the audio chime
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed flags
//  3. Start() - acquire devices, launch goroutines
//  4. [runtime operation]
//  5. Stop() - release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Init configures the service from optional args
	Init(args ...any) error

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Group starts and stops services in order; Stop runs in reverse
type Group struct {
	services []Service
	started  []Service
}

// Add registers a service
func (g *Group) Add(s Service) {
	g.services = append(g.services, s)
}

// Start starts every registered service.
// A failed service is reported through onError and skipped; the rest still start.
func (g *Group) Start(onError func(s Service, err error)) {
	for _, s := range g.services {
		if err := s.Start(); err != nil {
			if onError != nil {
				onError(s, err)
			}
			continue
		}
		g.started = append(g.started, s)
	}
}

// Stop stops started services in reverse order
func (g *Group) Stop() {
	for i := len(g.started) - 1; i >= 0; i-- {
		g.started[i].Stop()
	}
	g.started = nil
}
