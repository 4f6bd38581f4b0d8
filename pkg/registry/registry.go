// Package registry provides a concurrency-safe store of definitions keyed by
// namespaced id ("namespace:name").
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// VanillaNamespace is the namespace assumed for ids written without one.
const VanillaNamespace = "minecraft"

var (
	// ErrAlreadyRegistered is returned when an id is registered twice.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNotRegistered is returned when looking up an unknown id.
	ErrNotRegistered = errors.New("not registered")
)

// Registry maps namespaced ids to definitions of one kind.
type Registry[T any] struct {
	kind    string
	entries map[string]T
	mu      sync.RWMutex
}

// New creates an empty registry. kind ("block", "item", ...) is used in error
// messages only.
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:    kind,
		entries: make(map[string]T),
	}
}

// Kind returns the kind of definition held.
func (r *Registry[T]) Kind() string { return r.kind }

// Register stores def under id. The id must already be qualified.
func (r *Registry[T]) Register(id string, def T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("%w: %s %s", ErrAlreadyRegistered, r.kind, id)
	}
	r.entries[id] = def
	return nil
}

// Lookup returns the definition for id. Ids without a namespace are looked up
// in the vanilla namespace.
func (r *Registry[T]) Lookup(id string) (T, error) {
	qualified := QualifyID(id, VanillaNamespace)

	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.entries[qualified]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: no %s %s", ErrNotRegistered, r.kind, qualified)
	}
	return def, nil
}

// Has reports whether id is registered.
func (r *Registry[T]) Has(id string) bool {
	_, err := r.Lookup(id)
	return err == nil
}

// IDs returns every registered id in sorted order.
func (r *Registry[T]) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered definitions.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// QualifyID lowercases id and prefixes it with namespace when it has none.
func QualifyID(id, namespace string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if strings.Contains(id, ":") {
		return id
	}
	return strings.ToLower(namespace) + ":" + id
}

// SplitID returns the namespace and name parts of a qualified id.
func SplitID(id string) (namespace, name string, ok bool) {
	return strings.Cut(id, ":")
}
