// Package storage implements the experiment store on the filesystem, one
// YAML file per experiment.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orchid-ml/orchid/internal/domain/experiment"
)

const (
	// maxFileSize limits experiment file size to prevent memory
	// exhaustion (4MB).
	maxFileSize int64 = 4 * 1024 * 1024

	fileExt = ".yaml"
)

// YAMLStore persists experiments as YAML files under a root directory.
type YAMLStore struct {
	root string
}

// NewYAMLStore creates a store rooted at dir. The directory is created on
// first Save, not here.
func NewYAMLStore(dir string) *YAMLStore {
	return &YAMLStore{root: dir}
}

// Root returns the store's root directory.
func (s *YAMLStore) Root() string {
	return s.root
}

// Ensure YAMLStore implements the experiment store port.
var _ experiment.Store = (*YAMLStore)(nil)

// Load retrieves an experiment by name.
func (s *YAMLStore) Load(name string) (*experiment.Experiment, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	path := filepath.Join(s.root, name+fileExt)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("experiment %q: %w", name, experiment.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("experiment file %s exceeds %d bytes", path, maxFileSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxFileSize))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var exp experiment.Experiment
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &exp, nil
}

// Save stores an experiment, replacing any previous version.
func (s *YAMLStore) Save(exp *experiment.Experiment) error {
	if exp == nil {
		return fmt.Errorf("experiment cannot be nil")
	}
	if err := validateName(exp.Name); err != nil {
		return err
	}

	if err := os.MkdirAll(s.root, 0700); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}

	data, err := yaml.Marshal(exp)
	if err != nil {
		return fmt.Errorf("encoding experiment %q: %w", exp.Name, err)
	}

	path := filepath.Join(s.root, exp.Name+fileExt)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Delete removes an experiment by name.
func (s *YAMLStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	path := filepath.Join(s.root, name+fileExt)
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("experiment %q: %w", name, experiment.ErrNotFound)
	}
	return err
}

// List returns the names of all stored experiments, sorted. A missing root
// directory yields an empty list, not an error.
func (s *YAMLStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading storage directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Exists checks if an experiment with the given name exists.
func (s *YAMLStore) Exists(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}

	_, err := os.Stat(filepath.Join(s.root, name+fileExt))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// validateName rejects names that are empty or escape the storage root.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("experiment name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid experiment name %q", name)
	}
	return nil
}
