// Package db provides the built-in plugins for the db command group. Each
// plugin registers itself under the db namespace at process start; the CLI
// root discovers them and collects their subcommands through a shared
// registrar.
package db

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orchid-ml/orchid/internal/adapters/storage"
	"github.com/orchid-ml/orchid/internal/domain/config"
)

// Namespace is the logical namespace the db plugins register under.
const Namespace = "db"

// openStore resolves the experiment store for a running command, honoring
// the root command's --config flag.
func openStore(cmd *cobra.Command) (*storage.YAMLStore, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		path = ""
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return storage.NewYAMLStore(cfg.Storage.Dir), nil
}
