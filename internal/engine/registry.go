package engine

import (
	"fmt"
	"slices"
	"sync"
)

// Provider constructs a Service for one project.
type Provider func(host Host) (Service, error)

var (
	providersMu sync.RWMutex
	providers   = make(map[string]Provider)
)

// Register makes an engine available under the given name. Engine adapters
// call Register from an init function, like database/sql drivers.
func Register(name string, provider Provider) {
	providersMu.Lock()
	defer providersMu.Unlock()
	if provider == nil {
		panic("engine: Register provider is nil")
	}
	if _, dup := providers[name]; dup {
		panic("engine: Register called twice for engine " + name)
	}
	providers[name] = provider
}

// Open constructs a Service from the named registered provider.
func Open(name string, host Host) (Service, error) {
	providersMu.RLock()
	provider, ok := providers[name]
	providersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("engine: unknown engine %q (registered engines: %v)", name, Engines())
	}
	return provider(host)
}

// Engines returns the sorted names of the registered engines.
func Engines() []string {
	providersMu.RLock()
	defer providersMu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
