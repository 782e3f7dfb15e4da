package plugin

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrNilCommand indicates a nil command was passed to the registrar.
	ErrNilCommand = errors.New("command cannot be nil")
)

// DiscoveryError indicates a namespace could not be resolved. Discovery is
// deterministic for a fixed binary, so retrying does not help.
type DiscoveryError struct {
	Namespace string
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("unknown plugin namespace %q", e.Namespace)
}

// IsDiscoveryError returns true if the error indicates an unresolvable
// namespace.
func IsDiscoveryError(err error) bool {
	var discErr *DiscoveryError
	return errors.As(err, &discErr)
}

// LoadError indicates a candidate module failed to load. A load failure
// aborts discovery of the remaining candidates.
type LoadError struct {
	Namespace string
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading plugin in namespace %q: %v", e.Namespace, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError returns true if the error is a plugin load failure.
func IsLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}

// CollisionError indicates two plugins contributed the same subcommand name.
type CollisionError struct {
	Name string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("subcommand %q already registered", e.Name)
}

// IsCollision returns true if the error indicates a subcommand name
// collision.
func IsCollision(err error) bool {
	var colErr *CollisionError
	return errors.As(err, &colErr)
}
