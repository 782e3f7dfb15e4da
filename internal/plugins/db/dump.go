package db

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/orchid-ml/orchid/internal/domain/experiment"
	"github.com/orchid-ml/orchid/internal/domain/plugin"
)

func init() {
	plugin.Register(Namespace, func() (plugin.Module, error) {
		return &DumpPlugin{}, nil
	})
}

// DumpPlugin contributes the subcommand that exports stored experiments as
// a single YAML document.
type DumpPlugin struct{}

// Name identifies the plugin within the db namespace.
func (p *DumpPlugin) Name() string { return "dump" }

// RegisterInto adds the dump subcommand to the registrar.
func (p *DumpPlugin) RegisterInto(r *plugin.Registrar) error {
	var output string

	cmd := &cobra.Command{
		Use:   "dump [experiment...]",
		Short: "Export stored experiments as YAML",
		Long: `Export experiments as a single YAML document, to stdout or a file.
Without arguments, every stored experiment is exported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the dump to a file instead of stdout")

	return r.Add(cmd)
}

// Ensure DumpPlugin satisfies the command capability.
var _ plugin.CommandPlugin = (*DumpPlugin)(nil)

func runDump(cmd *cobra.Command, names []string, output string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		names, err = store.List()
		if err != nil {
			return err
		}
	}

	experiments := make([]*experiment.Experiment, 0, len(names))
	for _, name := range names {
		exp, err := store.Load(name)
		if err != nil {
			return err
		}
		experiments = append(experiments, exp)
	}

	var out io.Writer = cmd.OutOrStdout()
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	enc := yaml.NewEncoder(out)
	defer func() { _ = enc.Close() }()
	for _, exp := range experiments {
		if err := enc.Encode(exp); err != nil {
			return fmt.Errorf("encoding experiment %q: %w", exp.Name, err)
		}
	}
	return nil
}
