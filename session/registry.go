package session

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Registry keeps the sessions of a host that runs several visualizations.
type Registry struct {
	mu       sync.RWMutex
	defaults []Option
	sessions map[uuid.UUID]*Session
	order    []uuid.UUID
}

// NewRegistry returns an empty registry. defaults apply to every Create
// before the per-call options.
func NewRegistry(defaults ...Option) *Registry {
	return &Registry{
		defaults: defaults,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts and registers a new session.
func (r *Registry) Create(opts ...Option) *Session {
	all := append(slices.Clone(r.defaults), opts...)
	s := New(all...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.id] = s
	r.order = append(r.order, s.id)

	return s
}

// Get returns the session with id, or ErrNotFound.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	return s, nil
}

// Delete removes the session with id, or returns ErrNotFound.
func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	r.order = slices.DeleteFunc(r.order, func(x uuid.UUID) bool { return x == id })

	return nil
}

// List returns the IDs of live sessions in creation order.
func (r *Registry) List() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
