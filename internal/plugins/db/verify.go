package db

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orchid-ml/orchid/internal/domain/plugin"
	"github.com/orchid-ml/orchid/internal/ports"
)

func init() {
	plugin.Register(Namespace, func() (plugin.Module, error) {
		return &VerifyPlugin{}, nil
	})
}

// VerifyPlugin contributes the subcommand that checks every stored
// experiment loads cleanly.
type VerifyPlugin struct{}

// Name identifies the plugin within the db namespace.
func (p *VerifyPlugin) Name() string { return "verify" }

// RegisterInto adds the verify subcommand to the registrar.
func (p *VerifyPlugin) RegisterInto(r *plugin.Registrar) error {
	return r.Add(&cobra.Command{
		Use:   "verify",
		Short: "Check that every stored experiment loads cleanly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd)
		},
	})
}

// Ensure VerifyPlugin satisfies the command capability.
var _ plugin.CommandPlugin = (*VerifyPlugin)(nil)

func runVerify(cmd *cobra.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	names, err := store.List()
	if err != nil {
		return err
	}

	log := ports.LoggerFromContext(cmd.Context())
	broken := 0
	for _, name := range names {
		if _, err := store.Load(name); err != nil {
			broken++
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", name, err)
			if log != nil {
				log.Warn(cmd.Context(), "experiment failed to load",
					ports.F("experiment", name), ports.F("error", err))
			}
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK   %s\n", name)
	}

	if broken > 0 {
		return fmt.Errorf("%d of %d experiments failed to load", broken, len(names))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Verified %d experiments.\n", len(names))
	return nil
}
