package engine

import (
	"sync"

	"github.com/google/uuid"
)

// Registry hands out one Engine per learner, constructing each lazily
// on first use. Calls for different learners run fully in parallel;
// each engine serializes its own learner's operations.
type Registry struct {
	mu      sync.RWMutex
	engines map[uuid.UUID]*Engine
	opts    Options
}

// NewRegistry creates a registry that builds engines with the given
// options.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		engines: make(map[uuid.UUID]*Engine),
		opts:    opts,
	}
}

// ForLearner returns the learner's engine, creating it on first use.
func (r *Registry) ForLearner(learnerID uuid.UUID) *Engine {
	r.mu.RLock()
	e, ok := r.engines[learnerID]
	r.mu.RUnlock()
	if ok {
		return e
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have won the race between the locks.
	if e, ok := r.engines[learnerID]; ok {
		return e
	}

	e = New(learnerID, r.opts)
	r.engines[learnerID] = e

	return e
}

// Len returns the number of learner engines currently held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.engines)
}
