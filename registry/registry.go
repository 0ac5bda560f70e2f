package registry

import (
	"fmt"
	"prompt-lab/adapter"
	"prompt-lab/errors"
	"sort"
	"sync"
)

// Entry binds a model identifier to the constructor of its adapter.
type Entry struct {
	ModelID string
	New     func() adapter.IAdapter
}

// Entries is the static registration table. Adding a model means adding a line here.
var Entries = []Entry{
	{"gpt-4o", func() adapter.IAdapter { return adapter.NewGPT4o() }},
	{"gemini-2.5-pro", func() adapter.IAdapter { return adapter.NewGemini() }},
	{"gpt-o3", func() adapter.IAdapter { return adapter.NewO3() }},
	{"vercel-v0", func() adapter.IAdapter { return adapter.NewV0() }},
	{"dalle-3", func() adapter.IAdapter { return adapter.NewDALLE3() }},
	{"imagen-3", func() adapter.IAdapter { return adapter.NewImagen3() }},
	{"midjourney-v6", func() adapter.IAdapter { return adapter.NewMidjourneyV6() }},
	{"sora", func() adapter.IAdapter { return adapter.NewSora() }},
	{"google-veo-3", func() adapter.IAdapter { return adapter.NewVeo3() }},
	{"pika", func() adapter.IAdapter { return adapter.NewPika() }},
	{"suno", func() adapter.IAdapter { return adapter.NewSuno() }},
}

// Registry maps model identifiers to adapter instances.
// It is filled at startup and only read afterwards; the lock covers registrations made by tests or embedders.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]adapter.IAdapter
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]adapter.IAdapter)}
}

// NewDefaultRegistry instantiates every adapter of the registration table.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, e := range Entries {
		r.Register(e.ModelID, e.New())
	}
	return r
}

// Register adds or replaces the adapter of a model. Registration order is kept for listings.
func (r *Registry) Register(modelID string, a adapter.IAdapter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[modelID]; !exists {
		r.order = append(r.order, modelID)
	}
	r.adapters[modelID] = a
}

// Get looks a model up by its exact identifier.
func (r *Registry) Get(modelID string) (adapter.IAdapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.adapters[modelID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownModel, modelID)
	}
	return a, nil
}

// IDs returns the registered identifiers in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// SortedIDs is used in error messages so the listing does not depend on the table layout.
func (r *Registry) SortedIDs() []string {
	ids := r.IDs()
	sort.Strings(ids)
	return ids
}

// All returns the adapters in registration order.
func (r *Registry) All() []adapter.IAdapter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]adapter.IAdapter, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.adapters[id])
	}
	return all
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.adapters)
}
