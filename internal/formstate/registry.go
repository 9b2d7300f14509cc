package formstate

import (
	"sync"
	"time"
)

// Registry keeps one Machine per form session id.
type Registry struct {
	mu       sync.Mutex
	machines map[string]*Machine
}

func NewRegistry() *Registry {
	return &Registry{machines: make(map[string]*Machine)}
}

// Get returns the machine for id, creating it on first use.
func (r *Registry) Get(id string) *Machine {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.machines[id]
	if !ok {
		m = NewMachine()
		r.machines[id] = m
	}
	return m
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.machines)
}

// Evict resets and forgets every machine untouched since before cutoff,
// returning how many were removed.
func (r *Registry) Evict(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, m := range r.machines {
		if m.lastTouched().Before(cutoff) {
			m.Reset()
			delete(r.machines, id)
			n++
		}
	}
	return n
}
