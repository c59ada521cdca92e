package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps session ids to carts, creating a cart lazily on first use.
// It replaces the single process-wide cart of a one-user client: every
// session gets its own isolated cart, which also lets tests run in parallel.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// Get returns the cart bound to sessionID, creating it if needed.
func (r *Registry) Get(sessionID string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[sessionID]
	if !ok {
		c = New()
		r.carts[sessionID] = c
	}

	return c
}

// NewSession issues a fresh session id with an empty cart behind it.
func (r *Registry) NewSession() string {
	id := uuid.NewString()

	r.mu.Lock()
	r.carts[id] = New()
	r.mu.Unlock()

	return id
}
