package registry

import (
	"errors"
	"fmt"
)

// ErrNoSuchIndex indicates that NameOf was asked for an index outside [0, Count()).
var ErrNoSuchIndex = errors.New("registry: no such index")

// Registry is a bijection between vertex names and dense indices.
// byName maps name → index; byIndex is the reverse lookup in registration order.
type Registry struct {
	byName  map[string]int // name → index
	byIndex []string       // index → name
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register returns the index of name, assigning the next sequential index
// (starting at 0) if name has not been seen before.
func (r *Registry) Register(name string) int {
	if idx, ok := r.byName[name]; ok {
		return idx
	}
	idx := len(r.byIndex)
	r.byName[name] = idx
	r.byIndex = append(r.byIndex, name)

	return idx
}

// IndexOf returns the index assigned to name and whether name is registered.
func (r *Registry) IndexOf(name string) (int, bool) {
	idx, ok := r.byName[name]
	return idx, ok
}

// NameOf returns the name registered at index.
// Returns ErrNoSuchIndex (wrapped with the offending index) when out of range.
func (r *Registry) NameOf(index int) (string, error) {
	if index < 0 || index >= len(r.byIndex) {
		return "", fmt.Errorf("%w: %d (count %d)", ErrNoSuchIndex, index, len(r.byIndex))
	}
	return r.byIndex[index], nil
}

// Count returns the number of distinct names registered.
func (r *Registry) Count() int { return len(r.byIndex) }

// Names returns all registered names in index order.
// The returned slice is a copy; callers may modify it freely.
func (r *Registry) Names() []string {
	out := make([]string, len(r.byIndex))
	copy(out, r.byIndex)

	return out
}
