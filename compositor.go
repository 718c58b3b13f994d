package uioverlay

import (
	"errors"
	"sync"
)

// Compositor name constants.
const (
	// CompositorGPU is the name of the wgpu-based compositor (gpu/).
	CompositorGPU = "gpu"
	// CompositorSoftware is the name of the CPU compositor (software/).
	CompositorSoftware = "software"
)

// ErrNotRegistered is returned when a requested compositor is not registered.
var ErrNotRegistered = errors.New("uioverlay: compositor not registered")

// Compositor is the common surface of a compositing backend.
//
// The concrete types carry the actual compositing entry points, which
// differ by domain: software.Compositor operates on CPU textures, while
// gpu.Compositor records draws into a wgpu render pass. This interface
// covers the shared lifecycle so hosts can select a backend by name.
//
// Backend packages register themselves via Register, typically from an
// init function. Users opt in via blank import:
//
//	import _ "github.com/gogpu/uioverlay/software"
type Compositor interface {
	// Name returns the compositor identifier (e.g., "gpu", "software").
	Name() string

	// Init prepares the compositor for use. For the GPU compositor this
	// requires a device to have been attached first.
	Init() error

	// Close releases all compositor resources.
	// The compositor should not be used after Close is called.
	Close()
}

// Factory creates a new compositor instance.
type Factory func() Compositor

// registry holds registered compositor backends.
var (
	registryMu  sync.RWMutex
	compositors = make(map[string]Factory)
	// Priority order for default selection (first available wins).
	// GPU > software: the CPU path is the fallback.
	compositorPriority = []string{CompositorGPU, CompositorSoftware}
)

// Register registers a compositor factory with the given name.
// This is typically called from init() functions in backend packages.
// If a compositor with the same name is already registered, it will be
// replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	compositors[name] = factory
}

// Unregister removes a compositor from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(compositors, name)
}

// Available returns a list of registered compositor names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(compositors))
	for name := range compositors {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a compositor with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := compositors[name]
	return ok
}

// Get returns a compositor instance by name.
// Returns nil if the compositor is not registered.
func Get(name string) Compositor {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := compositors[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available compositor based on priority.
// Priority order: gpu > software.
// Returns nil if no compositors are registered.
func Default() Compositor {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range compositorPriority {
		if factory, ok := compositors[name]; ok {
			if c := factory(); c != nil {
				Logger().Info("uioverlay: compositor selected", "name", name)
				return c
			}
		}
	}
	return nil
}

// InitDefault selects the default compositor and initializes it.
func InitDefault() (Compositor, error) {
	c := Default()
	if c == nil {
		return nil, ErrNotRegistered
	}

	if err := c.Init(); err != nil {
		return nil, err
	}

	return c, nil
}
