package bubble

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for unregistered names.
var ErrUnknownBackend = errors.New("bubble: unknown backend")

// BackendFactory is a function that creates a new backend instance.
type BackendFactory func() Backend

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// RegisterBackend registers a backend factory with the given name.
// This is typically called from init() in backend packages,
// following the database/sql driver pattern.
//
// RegisterBackend panics if factory is nil or if the name is taken.
func RegisterBackend(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("bubble: RegisterBackend factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("bubble: RegisterBackend called twice for " + name)
	}
	backends[name] = factory
	Logger().Debug("bubble: backend registered", "name", name)
}

// UnregisterBackend removes a backend from the registry.
// This is primarily useful for testing. Unknown names are ignored.
func UnregisterBackend(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
//
//	import _ "github.com/gogpu/bubble/backend/svg" // register "svg"
//
//	b, err := bubble.NewBackend("svg")
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	Logger().Debug("bubble: backend selected", "name", name)
	return factory(), nil
}

// Backends returns the sorted names of registered backends.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
