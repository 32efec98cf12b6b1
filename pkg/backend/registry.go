package backend

import (
	"sort"
	"sync"

	"github.com/getmockd/awsmock/pkg/comprehend"
)

// Factory builds a backend for a partition.
type Factory func(region, accountID string) *comprehend.Backend

type partition struct {
	region    string
	accountID string
}

// Registry hands out one backend per (region, account) partition, creating
// them lazily through the factory.
type Registry struct {
	mu       sync.Mutex
	backends map[partition]*comprehend.Backend
	factory  Factory
}

// NewRegistry creates a registry. A nil factory defaults to
// comprehend.NewBackend.
func NewRegistry(factory Factory) *Registry {
	if factory == nil {
		factory = comprehend.NewBackend
	}
	return &Registry{
		backends: make(map[partition]*comprehend.Backend),
		factory:  factory,
	}
}

// Get returns the backend for a partition, creating it on first use.
// Repeated calls with the same partition return the same instance.
func (r *Registry) Get(region, accountID string) *comprehend.Backend {
	key := partition{region: region, accountID: accountID}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.backends[key]
	if !ok {
		b = r.factory(region, accountID)
		r.backends[key] = b
	}
	return b
}

// Reset drops every backend. The next Get creates fresh instances — this is
// the test-isolation hook.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends = make(map[partition]*comprehend.Backend)
}

// Count returns the number of instantiated partitions.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.backends)
}

// Partitions returns "region/account" keys for every instantiated backend,
// sorted for deterministic output.
func (r *Registry) Partitions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.backends))
	for p := range r.backends {
		keys = append(keys, p.region+"/"+p.accountID)
	}
	sort.Strings(keys)
	return keys
}
