package platform

import (
	"fmt"
	"sync"
)

// Platform names used by the built-in implementations.
const (
	// PlatformDOM is the browser platform (js/wasm builds only).
	PlatformDOM = "dom"

	// PlatformNative is the wgpu-backed desktop development platform.
	PlatformNative = "native"

	// PlatformHeadless is the in-memory fake platform.
	PlatformHeadless = "headless"
)

// Factory creates a new platform instance. A factory may fail, e.g. when
// the native platform finds no usable GPU adapter.
type Factory func() (Platform, error)

// registry holds registered platforms.
var (
	registryMu sync.RWMutex
	platforms  = make(map[string]Factory)
	// Priority order for platform selection (first available wins).
	// dom > native > headless (dom only exists on js/wasm builds).
	platformPriority = []string{PlatformDOM, PlatformNative, PlatformHeadless}
)

// Register registers a platform factory with the given name.
// This is typically called from init() functions in platform packages.
// If a platform with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	platforms[name] = factory
}

// Unregister removes a platform from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(platforms, name)
}

// Available returns a list of registered platform names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a platform with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := platforms[name]
	return ok
}

// Get returns a platform instance by name.
// Returns ErrPlatformNotAvailable (wrapped) if the platform is not
// registered or its factory fails.
func Get(name string) (Platform, error) {
	registryMu.RLock()
	factory, ok := platforms[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q is not registered", ErrPlatformNotAvailable, name)
	}
	p, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPlatformNotAvailable, name, err)
	}
	return p, nil
}

// Default returns the best available platform based on priority.
// Factories that fail are skipped, so a missing GPU degrades from "native"
// to "headless" instead of failing selection outright.
func Default() (Platform, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range platformPriority {
		factory, ok := platforms[name]
		if !ok {
			continue
		}
		p, err := factory()
		if err != nil {
			continue
		}
		if p != nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: no platform registered", ErrPlatformNotAvailable)
}
