package plugin

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Factory builds a plugin module. Factories run lazily, the first time a
// loader acquires the plugin, so a broken plugin cannot fail program start.
type Factory func(ctx context.Context) (*Module, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a plugin factory to the registry.
// Called by plugin implementations in their init() functions.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Unregister removes a plugin factory. Used for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

// Lookup retrieves a plugin factory by name.
func Lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// IsRegistered checks if a plugin is registered.
func IsRegistered(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// List returns all registered plugin names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Acquire looks up the named plugin and runs its factory. A panicking factory
// is reported as an error.
func Acquire(ctx context.Context, name string) (mod *Module, err error) {
	factory, ok := Lookup(name)
	if !ok || factory == nil {
		return nil, &UnknownPluginError{Name: name, Available: List()}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("acquire plugin %q: %w", name, err)
	}

	defer func() {
		if r := recover(); r != nil {
			mod = nil
			err = fmt.Errorf("plugin %q factory panicked: %v", name, r)
		}
	}()

	mod, err = factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire plugin %q: %w", name, err)
	}
	if mod == nil {
		return nil, fmt.Errorf("acquire plugin %q: %w", name, ErrNilModule)
	}
	return mod, nil
}
