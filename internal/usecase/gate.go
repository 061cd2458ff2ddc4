package usecase

import "sync"

// GateSet holds one single-slot in-flight guard per session key. It models
// the "submit button disabled while a request is outstanding" rule without
// any UI coupling: at most one generation per key at a time.
type GateSet struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewGateSet() *GateSet {
	return &GateSet{inFlight: make(map[string]struct{})}
}

// TryAcquire claims the slot for key. It returns a release func and true on
// success, or false when a request for the same key is still in flight.
func (g *GateSet) TryAcquire(key string) (func(), bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return nil, false
	}
	g.inFlight[key] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, key)
			g.mu.Unlock()
		})
	}
	return release, true
}
