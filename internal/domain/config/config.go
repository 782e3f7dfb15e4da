// Package config loads the orchid configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the configuration file searched for in the working directory
// and under the orchid home directory.
const FileName = "orchid.toml"

// maxConfigSize limits config file size (256KB).
const maxConfigSize int64 = 256 * 1024

// Config is the tool configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Plot    PlotConfig    `toml:"plot"`
	Plugins PluginsConfig `toml:"plugins"`
}

// StorageConfig configures experiment persistence.
type StorageConfig struct {
	// Dir is the directory experiments are stored under.
	Dir string `toml:"dir"`
}

// PlotConfig configures plotting defaults.
type PlotConfig struct {
	// DefaultKind is the plot kind used when none is requested.
	DefaultKind string `toml:"default_kind"`
}

// PluginsConfig configures plugin discovery.
type PluginsConfig struct {
	// Disabled lists plugin names excluded from discovery.
	Disabled []string `toml:"disabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Plot.DefaultKind = "regret"

	home, err := os.UserHomeDir()
	if err == nil {
		cfg.Storage.Dir = filepath.Join(home, ".orchid", "experiments")
	} else {
		cfg.Storage.Dir = "experiments"
	}
	return cfg
}

// Load reads the configuration from path. An empty path searches the
// working directory, then the orchid home directory; when no file exists
// the defaults are returned without error. An explicit path that does not
// exist is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = findConfig()
		if path == "" {
			return Default(), nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &UserError{
				Code:       ErrCodeConfigNotFound,
				Message:    "config file not found",
				Context:    path,
				Suggestion: fmt.Sprintf("create %s or omit --config to use defaults", path),
				Underlying: err,
			}
		}
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxConfigSize))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		var decodeErr *toml.DecodeError
		context := path
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			context = fmt.Sprintf("%s:%d:%d", path, row, col)
		}
		return nil, &UserError{
			Code:       ErrCodeConfigParse,
			Message:    "config file is not valid TOML",
			Context:    context,
			Suggestion: "fix the syntax error and retry",
			Underlying: err,
		}
	}

	if cfg.Storage.Dir == "" {
		return nil, &UserError{
			Code:       ErrCodeConfigInvalid,
			Message:    "storage.dir cannot be empty",
			Context:    path,
			Suggestion: "set storage.dir to the directory experiments live in",
		}
	}
	return cfg, nil
}

// findConfig returns the first config file present in the search path, or
// empty when none exists.
func findConfig() string {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".orchid", FileName))
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}
