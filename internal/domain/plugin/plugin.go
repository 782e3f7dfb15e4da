// Package plugin provides the compiled-in plugin registry and discovery.
//
// Plugin packages register a constructor under a logical namespace from
// their init function. The CLI root later discovers every module in a
// namespace that satisfies a capability predicate and invokes its
// registration hook with a shared Registrar.
package plugin

import (
	"fmt"
	"sync"
)

// Module is a unit of code registered under a namespace.
type Module interface {
	// Name identifies the module within its namespace.
	Name() string
}

// Constructor builds a candidate module. Returning an error marks the
// candidate as failing to load.
type Constructor func() (Module, error)

// Predicate filters discovery results. It must be pure: no side effects,
// same answer for the same module.
type Predicate func(Module) bool

// CommandPlugin is the capability a module implements to contribute
// subcommands. RegisterInto mutates the shared registrar and returns an
// error only when the plugin cannot attach itself.
type CommandPlugin interface {
	Module
	RegisterInto(r *Registrar) error
}

// HasCommands reports whether a module can contribute subcommands.
func HasCommands(m Module) bool {
	_, ok := m.(CommandPlugin)
	return ok
}

// registry maps namespaces to their candidate constructors.
// Registration order within a namespace is preserved.
type registry struct {
	mu         sync.RWMutex
	namespaces map[string][]Constructor
}

func newRegistry() *registry {
	return &registry{namespaces: make(map[string][]Constructor)}
}

// defaultRegistry is populated by plugin package init functions.
var defaultRegistry = newRegistry()

// Register adds a constructor to a namespace. It panics on a nil
// constructor or empty namespace: both are programming errors in the
// registering package, not runtime conditions.
func Register(namespace string, ctor Constructor) {
	defaultRegistry.register(namespace, ctor)
}

func (r *registry) register(namespace string, ctor Constructor) {
	if namespace == "" {
		panic("plugin: empty namespace")
	}
	if ctor == nil {
		panic(fmt.Sprintf("plugin: nil constructor for namespace %q", namespace))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[namespace] = append(r.namespaces[namespace], ctor)
}

// Discover resolves every candidate in namespace and returns the modules
// satisfying the predicate, in registration order.
//
// An unknown namespace fails with *DiscoveryError. A candidate whose
// constructor fails aborts discovery immediately with *LoadError; already
// resolved modules are discarded. Modules failing the predicate are
// excluded silently. A namespace with no qualifying candidates yields an
// empty slice, not an error.
//
// Constructors may run module initialization, so discovery is not
// side-effect-free; callers should invoke it once per namespace in the
// common path.
func Discover(namespace string, predicate Predicate) ([]Module, error) {
	return defaultRegistry.discover(namespace, predicate)
}

func (r *registry) discover(namespace string, predicate Predicate) ([]Module, error) {
	r.mu.RLock()
	ctors, ok := r.namespaces[namespace]
	r.mu.RUnlock()
	if !ok {
		return nil, &DiscoveryError{Namespace: namespace}
	}

	modules := make([]Module, 0, len(ctors))
	for _, ctor := range ctors {
		m, err := ctor()
		if err != nil {
			return nil, &LoadError{Namespace: namespace, Err: err}
		}
		if predicate != nil && !predicate(m) {
			continue
		}
		modules = append(modules, m)
	}
	return modules, nil
}

// RegisterCommands discovers every command-capable module in namespace and
// invokes its registration hook with the shared registrar, sequentially and
// in discovery order. Modules named in exclude are skipped. The first
// failing hook aborts registration of the remaining modules; entries
// already added stay in the registrar.
func RegisterCommands(namespace string, r *Registrar, exclude ...string) error {
	modules, err := Discover(namespace, Exclude(HasCommands, exclude...))
	if err != nil {
		return err
	}

	for _, m := range modules {
		cp := m.(CommandPlugin)
		if err := cp.RegisterInto(r); err != nil {
			return fmt.Errorf("registering plugin %q: %w", m.Name(), err)
		}
	}
	return nil
}

// Exclude wraps a predicate so that modules whose names appear in the list
// are filtered out even when they satisfy the inner predicate.
func Exclude(predicate Predicate, names ...string) Predicate {
	excluded := make(map[string]bool, len(names))
	for _, n := range names {
		excluded[n] = true
	}
	return func(m Module) bool {
		if excluded[m.Name()] {
			return false
		}
		return predicate == nil || predicate(m)
	}
}
