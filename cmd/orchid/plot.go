package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orchid-ml/orchid/internal/adapters/chart"
	"github.com/orchid-ml/orchid/internal/adapters/storage"
	"github.com/orchid-ml/orchid/internal/domain/config"
	"github.com/orchid-ml/orchid/internal/domain/plotting"
	"github.com/orchid-ml/orchid/internal/ports"
)

var plotFlags struct {
	kind    string
	output  string
	orderBy string
	noHover bool
	model   string
	nPoints int
	params  []string
}

var plotCmd = &cobra.Command{
	Use:   "plot <experiment>",
	Short: "Plot an experiment's trial history",
	Long: `Produce a figure specification for an experiment and write it as JSON.

Examples:
  orchid plot my-exp
  orchid plot my-exp --kind lpi --output lpi.json
  orchid plot my-exp --kind regret --order-by completed`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlot(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringVarP(&plotFlags.kind, "kind", "k", "", "plot kind (default from config, usually regret)")
	plotCmd.Flags().StringVarP(&plotFlags.output, "output", "o", "", "write the figure to a file instead of stdout")
	plotCmd.Flags().StringVar(&plotFlags.orderBy, "order-by", "", "trial ordering for regret plots (suggested, reserved, completed)")
	plotCmd.Flags().BoolVar(&plotFlags.noHover, "no-hover", false, "omit trial parameters from hover tooltips")
	plotCmd.Flags().StringVar(&plotFlags.model, "model", "", "regression model for lpi and partial_dependencies plots")
	plotCmd.Flags().IntVar(&plotFlags.nPoints, "n-points", 0, "number of points for lpi variance estimation")
	plotCmd.Flags().StringSliceVar(&plotFlags.params, "params", nil, "parameters to include (parallel_coordinates, partial_dependencies)")

	_ = plotCmd.RegisterFlagCompletionFunc("kind", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return plotting.Kinds(), cobra.ShellCompDirectiveNoFileComp
	})
}

func runPlot(cmd *cobra.Command, name string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	store := storage.NewYAMLStore(cfg.Storage.Dir)
	exp, err := store.Load(name)
	if err != nil {
		return err
	}

	accessor, err := plotting.NewAccessor(exp, chart.New())
	if err != nil {
		return err
	}

	kind := plotting.Kind(plotFlags.kind)
	if kind == "" {
		kind = plotting.Kind(cfg.Plot.DefaultKind)
	}

	fig, err := accessor.Plot(kind, plotOptions(kind))
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(fig, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding figure: %w", err)
	}

	if log := ports.LoggerFromContext(cmd.Context()); log != nil {
		log.Debug(cmd.Context(), "figure built",
			ports.F("experiment", name), ports.F("kind", string(kind)))
	}

	if plotFlags.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if err := os.WriteFile(plotFlags.output, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", plotFlags.output, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Figure written to ")+plotFlags.output)
	return nil
}

// plotOptions maps the plot flags onto the requested kind's options. A nil
// return lets the dispatch table apply the kind's defaults.
func plotOptions(kind plotting.Kind) any {
	switch kind {
	case plotting.KindRegret:
		opts := plotting.NewRegretOptions()
		if plotFlags.orderBy != "" {
			opts.OrderBy = plotFlags.orderBy
		}
		if plotFlags.noHover {
			opts.VerboseHover = false
		}
		return opts
	case plotting.KindLPI:
		opts := plotting.NewLPIOptions()
		if plotFlags.model != "" {
			opts.Model = plotFlags.model
		}
		if plotFlags.nPoints > 0 {
			opts.NPoints = plotFlags.nPoints
		}
		return opts
	case plotting.KindParallelCoordinates:
		opts := plotting.NewParallelCoordinatesOptions()
		opts.Order = plotFlags.params
		return opts
	case plotting.KindPartialDependencies:
		opts := plotting.NewPartialDependenciesOptions()
		if plotFlags.model != "" {
			opts.Model = plotFlags.model
		}
		opts.Params = plotFlags.params
		return opts
	default:
		// Unknown kinds are rejected by the accessor with the full list
		// of valid names.
		return nil
	}
}
