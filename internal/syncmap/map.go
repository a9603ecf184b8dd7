package syncmap

import (
	"sort"
	"sync"
)

// Map is a thread-safe generic map keyed by name.
type Map[T any] struct {
	mux sync.RWMutex
	m   map[string]T
}

// NewRegistry creates a new instance of Map.
func NewRegistry[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get retrieves an item by name; absent names yield the zero value.
func (r *Map[T]) Get(name string) T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	if v, ok := r.m[name]; ok {
		return v
	}
	var zero T
	return zero
}

// Set adds or updates an item by name.
func (r *Map[T]) Set(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[name] = value
}

// Delete removes an item by name.
func (r *Map[T]) Delete(name string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, name)
}

// Keys returns all names in sorted order for deterministic iteration.
func (r *Map[T]) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	keys := make([]string, 0, len(r.m))
	for name := range r.m {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// List returns a slice of all items.
func (r *Map[T]) List() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(r.m))
	for _, v := range r.m {
		ret = append(ret, v)
	}
	return ret
}
