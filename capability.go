package orrery

import (
	"errors"
	"sort"
	"sync"
)

// ErrNoBackend indicates that no rendering backend could be acquired.
// The backdrop treats this as the capability gate failing: it reveals the
// fallback panel and performs no further work.
var ErrNoBackend = errors.New("orrery: no rendering backend available")

// RenderBackend is a rendering capability provider. Implementations probe
// for their substrate in Init; a failing Init means the backend is
// unavailable on this device and the next candidate is tried.
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Init acquires the backend's resources. Called once during the
	// capability gate; an error marks the backend unavailable.
	Init() error

	// Close releases all backend resources.
	Close()

	// Renderer returns the backend's frame renderer.
	// Only valid after a successful Init.
	Renderer() Renderer
}

// BackendFactory creates a new backend instance.
type BackendFactory func() RenderBackend

type backendEntry struct {
	name     string
	priority int
	factory  BackendFactory
}

var (
	backendMu sync.RWMutex
	backends  = make(map[string]backendEntry)
)

// RegisterBackend registers a backend factory under the given name.
// Higher priority backends are tried first during acquisition. Typically
// called from init() functions in backend packages:
//
//	import _ "github.com/gogpu/orrery/backend/wgpu" // enables GPU rendering
//
// Registering a name that already exists replaces the previous entry.
func RegisterBackend(name string, priority int, factory BackendFactory) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backends[name] = backendEntry{name: name, priority: priority, factory: factory}
}

// UnregisterBackend removes a backend from the registry.
// This is useful for testing.
func UnregisterBackend(name string) {
	backendMu.Lock()
	defer backendMu.Unlock()
	delete(backends, name)
}

// RegisteredBackends returns registered backend names sorted by priority
// (highest first).
func RegisteredBackends() []string {
	backendMu.RLock()
	defer backendMu.RUnlock()

	entries := make([]backendEntry, 0, len(backends))
	for _, e := range backends {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// acquireBackend runs the capability gate: backends are tried in priority
// order and the first one whose Init succeeds wins. name, when non-empty,
// restricts acquisition to that single backend.
func acquireBackend(name string) (RenderBackend, error) {
	var candidates []string
	if name != "" {
		candidates = []string{name}
	} else {
		candidates = RegisteredBackends()
	}

	var lastErr error
	for _, n := range candidates {
		backendMu.RLock()
		entry, ok := backends[n]
		backendMu.RUnlock()
		if !ok {
			continue
		}

		b := entry.factory()
		if b == nil {
			continue
		}
		if err := b.Init(); err != nil {
			Logger().Warn("orrery: backend unavailable", "backend", n, "error", err)
			lastErr = err
			continue
		}
		Logger().Info("orrery: backend acquired", "backend", n)
		return b, nil
	}

	if lastErr != nil {
		return nil, errors.Join(ErrNoBackend, lastErr)
	}
	return nil, ErrNoBackend
}

// BackendSoftware is the name of the built-in CPU backend.
const BackendSoftware = "software"

// softwareBackend wraps SoftwareRenderer as an always-available backend.
type softwareBackend struct {
	renderer *SoftwareRenderer
}

func (b *softwareBackend) Name() string { return BackendSoftware }

func (b *softwareBackend) Init() error {
	b.renderer = NewSoftwareRenderer()
	return nil
}

func (b *softwareBackend) Close() {}

func (b *softwareBackend) Renderer() Renderer { return b.renderer }

func init() {
	RegisterBackend(BackendSoftware, 10, func() RenderBackend {
		return &softwareBackend{}
	})
}
