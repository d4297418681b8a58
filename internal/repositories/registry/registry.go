// Package registry holds the characters known to the current process
package registry

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
)

// Registry is the authoritative map of character ID to character. Characters
// are stored by pointer; callers mutate them in place.
type Registry interface {
	// Put registers a character under its ID, replacing any previous entry and
	// forgetting its saved snapshot
	Put(c *entities.Character)

	// Get returns the character registered under id
	Get(id string) (*entities.Character, bool)

	// Delete removes the character and its snapshot, reporting whether it was registered
	Delete(id string) bool

	// List returns every registered character sorted by name, then ID
	List() []*entities.Character

	// MarkSaved records the document last written for, or read into, a character
	MarkSaved(id string, snapshot []byte)

	// Snapshot returns the document recorded by MarkSaved
	Snapshot(id string) ([]byte, bool)
}

// InMemory implements Registry using a map guarded by a mutex
type InMemory struct {
	mu         sync.RWMutex
	characters map[string]*entities.Character
	snapshots  map[string][]byte
}

// NewInMemory creates an empty registry
func NewInMemory() *InMemory {
	return &InMemory{
		characters: make(map[string]*entities.Character),
		snapshots:  make(map[string][]byte),
	}
}

// Ensure InMemory implements the Registry interface
var _ Registry = (*InMemory)(nil)

// Put registers a character
func (r *InMemory) Put(c *entities.Character) {
	if c == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.characters[c.ID] = c
	delete(r.snapshots, c.ID)
}

// Get retrieves a character by ID
func (r *InMemory) Get(id string) (*entities.Character, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.characters[id]
	return c, ok
}

// Delete removes a character by ID
func (r *InMemory) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.characters[id]
	delete(r.characters, id)
	delete(r.snapshots, id)
	return ok
}

// List returns all characters in display order
func (r *InMemory) List() []*entities.Character {
	r.mu.RLock()
	out := make([]*entities.Character, 0, len(r.characters))
	for _, c := range r.characters {
		out = append(out, c)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *entities.Character) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return out
}

// MarkSaved stores a copy of the snapshot for a registered character
func (r *InMemory) MarkSaved(id string, snapshot []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[id]; !ok {
		return
	}
	r.snapshots[id] = slices.Clone(snapshot)
}

// Snapshot returns the last recorded snapshot for a character
func (r *InMemory) Snapshot(id string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.snapshots[id]
	return snapshot, ok
}
