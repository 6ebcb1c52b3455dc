package table

import (
	"fmt"
	"sort"
	"sync"
)

// Descriptor describes one declared table: its Go-facing name, its tag pair
// and its stored column names. Derived (lazily computed) quantities are not
// columns and do not appear here.
type Descriptor struct {
	Name    string   `json:"name"`
	Origin  string   `json:"origin"`
	Tag     string   `json:"tag"`
	Columns []string `json:"columns"`
}

// Registry maps description tags to table Descriptors.
// The zero value is not usable; use NewRegistry or the package default.
type Registry struct {
	mu    sync.RWMutex
	byTag map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byTag: make(map[string]Descriptor)}
}

// Register adds a descriptor. It panics on a duplicate description tag, since
// registration happens at package init and a clash is a programming error.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byTag[d.Tag]; ok {
		panic(fmt.Sprintf("table: duplicate description tag %q", d.Tag))
	}
	r.byTag[d.Tag] = d
}

// Lookup returns the descriptor registered under the description tag.
func (r *Registry) Lookup(tag string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byTag[tag]
	return d, ok
}

// Descriptors returns all registered descriptors sorted by description tag.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, 0, len(r.byTag))
	for _, d := range r.byTag {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// defaultRegistry collects the tables declared by the entity packages.
var defaultRegistry = NewRegistry()

// Register adds a descriptor to the default registry.
func Register(d Descriptor) {
	defaultRegistry.Register(d)
}

// Lookup queries the default registry by description tag.
func Lookup(tag string) (Descriptor, bool) {
	return defaultRegistry.Lookup(tag)
}

// Descriptors lists the default registry sorted by description tag.
func Descriptors() []Descriptor {
	return defaultRegistry.Descriptors()
}
