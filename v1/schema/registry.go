package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps routes to message descriptors and holds the global message
// types used when a nested type is not declared locally.
//
// A registry is populated at start-up (or on reload) and only read while
// encoding. Reads and writes are guarded so that a reload can be sequenced
// against concurrent encoders, but encoders never write.
type Registry struct {
	mu     sync.RWMutex
	routes map[string]*MessageDescriptor
	global map[string]*MessageDescriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		routes: make(map[string]*MessageDescriptor),
		global: make(map[string]*MessageDescriptor),
	}
}

// Register installs d as the descriptor of route, replacing any previous one.
func (r *Registry) Register(route string, d *MessageDescriptor) error {
	if route == "" || d == nil {
		return fmt.Errorf("%w: route %q", ErrInvalidDescriptor, route)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[route] = d
	return nil
}

// RegisterGlobal installs d as a global message type under d.Name.
func (r *Registry) RegisterGlobal(d *MessageDescriptor) error {
	if d == nil || d.Name == "" {
		return fmt.Errorf("%w: global message without a name", ErrInvalidDescriptor)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.global[d.Name] = d
	return nil
}

// Resolve returns the descriptor registered for route.
func (r *Registry) Resolve(route string) (*MessageDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.routes[route]
	return d, ok
}

// ResolveNested resolves a message type referenced from local: the types
// declared inside local win over the registry's global types.
func (r *Registry) ResolveNested(local *MessageDescriptor, typeName string) (*MessageDescriptor, bool) {
	if local != nil {
		if d, ok := local.Nested(typeName); ok {
			return d, true
		}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.global[typeName]
	return d, ok
}

// Routes returns the registered routes in sorted order.
func (r *Registry) Routes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.routes))
	for route := range r.routes {
		out = append(out, route)
	}
	sort.Strings(out)
	return out
}

// Merge copies every route and global type of other into r.
func (r *Registry) Merge(other *Registry) {
	if other == nil || other == r {
		return
	}
	other.mu.RLock()
	defer other.mu.RUnlock()
	r.mu.Lock()
	defer r.mu.Unlock()
	for route, d := range other.routes {
		r.routes[route] = d
	}
	for name, d := range other.global {
		r.global[name] = d
	}
}
