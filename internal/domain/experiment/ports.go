package experiment

import "errors"

// ErrNotFound indicates the named experiment does not exist in the store.
var ErrNotFound = errors.New("experiment not found")

// Store defines the interface for experiment persistence. This is a domain
// port that can be implemented by different adapters (filesystem, in-memory
// for testing, remote storage, etc.).
type Store interface {
	// Load retrieves an experiment by name. Returns ErrNotFound when the
	// name is unknown.
	Load(name string) (*Experiment, error)

	// Save stores an experiment, replacing any previous version.
	Save(exp *Experiment) error

	// Delete removes an experiment by name.
	Delete(name string) error

	// List returns the names of all stored experiments, sorted.
	List() ([]string, error)

	// Exists checks if an experiment with the given name exists.
	Exists(name string) (bool, error)
}
