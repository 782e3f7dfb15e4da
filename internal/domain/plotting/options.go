package plotting

import "github.com/orchid-ml/orchid/internal/domain/experiment"

// RegretOptions configures the regret plot.
type RegretOptions struct {
	// OrderBy selects the trial ordering: "suggested" (default),
	// "reserved", or "completed".
	OrderBy string
	// VerboseHover includes the trial parameters in hover tooltips.
	// Defaults to true.
	VerboseHover bool
}

// NewRegretOptions returns regret options with defaults applied.
func NewRegretOptions() *RegretOptions {
	return &RegretOptions{
		OrderBy:      experiment.OrderSuggested,
		VerboseHover: true,
	}
}

// LPIOptions configures the local parameter importance bar plot.
type LPIOptions struct {
	// Model names the regression model used to estimate importance.
	// Defaults to "RandomForestRegressor".
	Model string
	// ModelParams carries model-specific settings.
	ModelParams map[string]float64
	// NPoints is the number of points used to compute the variances.
	// Defaults to 20.
	NPoints int
}

// NewLPIOptions returns LPI options with defaults applied.
func NewLPIOptions() *LPIOptions {
	return &LPIOptions{
		Model:   "RandomForestRegressor",
		NPoints: 20,
	}
}

// ParallelCoordinatesOptions configures the parallel coordinates plot.
type ParallelCoordinatesOptions struct {
	// Order fixes the column order. When empty, columns are sorted
	// alphabetically.
	Order []string
}

// NewParallelCoordinatesOptions returns parallel coordinates options with
// defaults applied.
func NewParallelCoordinatesOptions() *ParallelCoordinatesOptions {
	return &ParallelCoordinatesOptions{}
}

// PartialDependenciesOptions configures the partial dependency contour
// plots.
type PartialDependenciesOptions struct {
	// Params restricts the plot to these parameters. All parameters are
	// included when empty.
	Params []string
	// Smoothing applied to the contour. 0 disables smoothing.
	// Defaults to 0.85.
	Smoothing float64
	// NGridPoints is the grid resolution per axis. Defaults to 10.
	NGridPoints int
	// NSamples is the number of samples used to build the grid.
	// Defaults to 50.
	NSamples int
	// Colorscale names the color gradient. Defaults to "Blues".
	Colorscale string
	// Model names the regression model used to estimate dependencies.
	// Defaults to "RandomForestRegressor".
	Model string
	// ModelParams carries model-specific settings.
	ModelParams map[string]float64
}

// NewPartialDependenciesOptions returns partial dependency options with
// defaults applied.
func NewPartialDependenciesOptions() *PartialDependenciesOptions {
	return &PartialDependenciesOptions{
		Smoothing:   0.85,
		NGridPoints: 10,
		NSamples:    50,
		Colorscale:  "Blues",
		Model:       "RandomForestRegressor",
	}
}
