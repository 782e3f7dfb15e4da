package db

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orchid-ml/orchid/internal/domain/plugin"
)

func init() {
	plugin.Register(Namespace, func() (plugin.Module, error) {
		return &SetupPlugin{}, nil
	})
}

// SetupPlugin contributes the subcommand that initializes the experiment
// storage directory.
type SetupPlugin struct{}

// Name identifies the plugin within the db namespace.
func (p *SetupPlugin) Name() string { return "setup" }

// RegisterInto adds the setup subcommand to the registrar.
func (p *SetupPlugin) RegisterInto(r *plugin.Registrar) error {
	return r.Add(&cobra.Command{
		Use:   "setup",
		Short: "Initialize the experiment storage directory",
		Long:  `Create the configured storage directory so experiments can be saved.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd)
		},
	})
}

// Ensure SetupPlugin satisfies the command capability.
var _ plugin.CommandPlugin = (*SetupPlugin)(nil)

func runSetup(cmd *cobra.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(store.Root(), 0700); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Storage initialized at %s\n", store.Root())
	return nil
}
