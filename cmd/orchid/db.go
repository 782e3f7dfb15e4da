package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orchid-ml/orchid/internal/domain/config"
	"github.com/orchid-ml/orchid/internal/domain/plugin"

	// Built-in db plugins register themselves at import time.
	"github.com/orchid-ml/orchid/internal/plugins/db"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Maintain the experiment store",
	Long:  `Database maintenance operations. Subcommands are contributed by plugins.`,
}

func init() {
	rootCmd.AddCommand(dbCmd)
}

// registerDBCommands discovers every plugin in the db namespace and lets
// each attach its subcommands to the db group. Called once at startup,
// before flag parsing, so the config path is scanned from the raw
// arguments; any discovery or registration failure is fatal.
func registerDBCommands() error {
	cfg, err := config.Load(configPathFromArgs(os.Args[1:]))
	if err != nil {
		return err
	}

	registrar := plugin.NewRegistrar()
	if err := plugin.RegisterCommands(db.Namespace, registrar, cfg.Plugins.Disabled...); err != nil {
		return fmt.Errorf("populating db commands: %w", err)
	}
	registrar.AttachTo(dbCmd)
	return nil
}

// configPathFromArgs extracts the --config value from raw arguments. Plugin
// registration happens before cobra parses flags.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if path, ok := strings.CutPrefix(arg, "--config="); ok {
			return path
		}
	}
	return ""
}
