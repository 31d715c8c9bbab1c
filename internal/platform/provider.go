package platform

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Opener creates a session for a backend-specific source, e.g. a file path.
type Opener func(source string) (Session, error)

// ErrUnknownBackend is returned by Open for names nobody registered.
var ErrUnknownBackend = errors.New("unknown host backend")

var (
	backendsMu sync.RWMutex
	backends   = map[string]Opener{}
)

// Register makes a backend available by name. Backend packages call it from
// init(); see internal/platform/replay for the recorded-session backend.
func Register(name string, open Opener) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if open == nil {
		panic("platform: Register opener is nil")
	}
	backends[name] = open
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open returns a session from the named backend.
func Open(name, source string) (Session, error) {
	backendsMu.RLock()
	open, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownBackend, name, Backends())
	}
	return open(source)
}
